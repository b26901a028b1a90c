package handlers

import (
	"log"
	"net/http"
	"time"

	"gallery/auth"

	"github.com/gin-gonic/gin"
)

func ArtworkLike(c *gin.Context) {
	artwork := loadArtwork(c)
	if artwork == nil {
		return
	}
	session := auth.LoadSession(c)
	liked, err := artwork.AddLike(session.Visitor())
	if err != nil {
		log.Printf("Artwork %d: like error: %v", artwork.ID, err)
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	if liked {
		artwork.Likes++
		Broadcast(ActivityEvent{
			Type:      "like",
			ArtworkID: artwork.ID,
			Title:     artwork.Title,
			Created:   time.Now().Unix(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "likes": artwork.Likes, "liked": liked})
}
