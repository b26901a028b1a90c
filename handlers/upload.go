package handlers

import (
	"bytes"
	"log"
	"net/http"
	"strings"
	"time"

	"gallery/config"
	"gallery/db"
	"gallery/models"
	"gallery/storage"
	"gallery/utils"

	"github.com/gin-gonic/gin"
)

const thumbSize = 1280

// ArtworkUpload handles the admin multipart upload: image + title/description.
// The gallery-full check runs before any byte reaches storage, so a rejected
// upload leaves nothing behind.
func ArtworkUpload(c *gin.Context) {
	count, err := models.ArtworkCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	if count >= int64(config.MAX_ARTWORKS) {
		c.JSON(http.StatusForbidden, GalleryFullResponse)
		return
	}
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, Response{"title is required"})
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"image is required"})
		return
	}
	if file.Size > int64(config.MAX_UPLOAD_SIZE_MB)<<20 {
		c.JSON(http.StatusBadRequest, Response{"file too large"})
		return
	}
	mimeType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		c.JSON(http.StatusBadRequest, Response{"not an image"})
		return
	}
	artwork := models.Artwork{
		Title:       title,
		Description: c.PostForm("description"),
		FileName:    models.NewFileName(file.Filename),
		MimeType:    mimeType,
	}
	reader, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	store := storage.Get()
	artwork.Size, err = store.Save(artwork.GetPath(), reader)
	reader.Close()
	if err != nil {
		log.Printf("Upload: save error: %v", err)
		c.JSON(http.StatusInternalServerError, Response{"storage error"})
		return
	}
	// Thumbnail is best-effort; the original is already stored
	var buf, thumb bytes.Buffer
	if _, err = store.Load(artwork.GetPath(), &buf); err == nil {
		if thumbInfo, err := utils.CreateThumb(thumbSize, &buf, &thumb); err == nil {
			artwork.Width = thumbInfo.OldX
			artwork.Height = thumbInfo.OldY
			artwork.ThumbWidth = thumbInfo.NewX
			artwork.ThumbHeight = thumbInfo.NewY
			if artwork.ThumbSize, err = store.Save(artwork.GetThumbPath(), &thumb); err != nil {
				log.Printf("Upload: cannot save thumb: %v", err)
			}
		} else {
			log.Printf("Upload: CreateThumb error: %v", err)
		}
	}
	if err = db.Instance.Create(&artwork).Error; err != nil {
		// Don't leave files behind without a record
		_ = store.Delete(artwork.GetPath())
		_ = store.Delete(artwork.GetThumbPath())
		log.Printf("Upload: DB error: %v", err)
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	Broadcast(ActivityEvent{
		Type:      "upload",
		ArtworkID: artwork.ID,
		Title:     artwork.Title,
		Created:   artwork.CreatedAt,
	})
	c.JSON(http.StatusOK, gin.H{"error": "", "artwork": artworkInfoFrom(&artwork)})
}

// ArtworkDelete removes the stored files (if still present) and the record.
// Comments, commenters and likes go with it.
func ArtworkDelete(c *gin.Context) {
	artwork := loadArtwork(c)
	if artwork == nil {
		return
	}
	store := storage.Get()
	if err := store.Delete(artwork.GetThumbPath()); err != nil {
		log.Printf("Artwork %d: thumb delete error: %v", artwork.ID, err)
	}
	if err := store.Delete(artwork.GetPath()); err != nil {
		log.Printf("Artwork %d: file delete error: %v", artwork.ID, err)
	}
	db.Instance.Exec("delete from comments where artwork_id=?", artwork.ID)
	db.Instance.Exec("delete from commenters where artwork_id=?", artwork.ID)
	db.Instance.Exec("delete from likes where artwork_id=?", artwork.ID)
	if err := db.Instance.Delete(artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	Broadcast(ActivityEvent{
		Type:      "delete",
		ArtworkID: artwork.ID,
		Title:     artwork.Title,
		Created:   time.Now().Unix(),
	})
	c.JSON(http.StatusOK, OKResponse)
}
