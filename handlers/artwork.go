package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"gallery/config"
	"gallery/db"
	"gallery/models"
	"gallery/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentInfo struct {
	Email   string `json:"email"`
	Text    string `json:"text"`
	Created int64  `json:"created"`
}

type ArtworkInfo struct {
	ID            uint64        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	FileName      string        `json:"filename"`
	MimeType      string        `json:"mime_type"`
	Width         uint16        `json:"width"`
	Height        uint16        `json:"height"`
	Uploaded      int64         `json:"uploaded"`
	Likes         uint64        `json:"likes"`
	Comments      []CommentInfo `json:"comments"`
	Commenters    int           `json:"commenters"`
	CommentersMax int           `json:"commenters_max"`
}

func artworkInfoFrom(a *models.Artwork) ArtworkInfo {
	comments := make([]CommentInfo, 0, len(a.Comments))
	for _, comment := range a.Comments {
		comments = append(comments, CommentInfo{
			Email:   comment.Email,
			Text:    comment.Content,
			Created: comment.CreatedAt,
		})
	}
	return ArtworkInfo{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		FileName:      a.FileName,
		MimeType:      a.MimeType,
		Width:         a.Width,
		Height:        a.Height,
		Uploaded:      a.CreatedAt,
		Likes:         a.Likes,
		Comments:      comments,
		Commenters:    len(a.Commenters),
		CommentersMax: config.MAX_COMMENTERS,
	}
}

// loadArtwork resolves the :id param. Writes the error response itself and
// returns nil when the id is malformed or unknown.
func loadArtwork(c *gin.Context) *models.Artwork {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, BadIDResponse)
		return nil
	}
	artwork := models.Artwork{ID: id}
	result := db.Instance.
		Preload("Comments", func(tx *gorm.DB) *gorm.DB { return tx.Order("comments.created_at") }).
		Preload("Commenters").
		First(&artwork)
	if result.Error != nil || artwork.ID != id {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return nil
	}
	return &artwork
}

func ArtworkList(c *gin.Context) {
	var artworks []models.Artwork
	result := db.Instance.
		Preload("Comments", func(tx *gorm.DB) *gorm.DB { return tx.Order("comments.created_at") }).
		Preload("Commenters").
		Order("created_at DESC").
		Find(&artworks)
	if result.Error != nil {
		log.Printf("DB error: %v", result.Error)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	infos := make([]ArtworkInfo, 0, len(artworks))
	for i := range artworks {
		infos = append(infos, artworkInfoFrom(&artworks[i]))
	}
	c.JSON(http.StatusOK, infos)
}

func ArtworkGet(c *gin.Context) {
	artwork := loadArtwork(c)
	if artwork == nil {
		return
	}
	c.JSON(http.StatusOK, artworkInfoFrom(artwork))
}

// ArtworkImage serves the stored bytes for /images/:name and /thumbs/:name
func ArtworkImage(thumb bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
			c.JSON(http.StatusBadRequest, BadIDResponse)
			return
		}
		artwork := models.Artwork{}
		result := db.Instance.Where("file_name = ?", name).First(&artwork)
		if result.Error != nil {
			c.JSON(http.StatusNotFound, NotFoundResponse)
			return
		}
		c.Header("cache-control", "public, max-age=604800")
		if thumb && artwork.ThumbSize > 0 {
			c.Header("content-type", "image/jpeg")
			storage.Get().Serve(artwork.GetThumbPath(), c.Request, c.Writer)
			return
		}
		c.Header("content-type", artwork.MimeType)
		storage.Get().Serve(artwork.GetPath(), c.Request, c.Writer)
	}
}
