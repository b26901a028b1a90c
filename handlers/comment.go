package handlers

import (
	"errors"
	"log"
	"net/http"

	"gallery/config"
	"gallery/models"

	"github.com/gin-gonic/gin"
)

type CommentRequest struct {
	Email string `json:"email" binding:"required"`
	Text  string `json:"text" binding:"required"`
}

func CommentCreate(c *gin.Context) {
	r := CommentRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	artwork := loadArtwork(c)
	if artwork == nil {
		return
	}
	comment, err := artwork.AddComment(r.Email, r.Text, config.MAX_COMMENTERS)
	if err != nil {
		if errors.Is(err, models.ErrCommentersFull) {
			c.JSON(http.StatusForbidden, CommentersFullResponse)
			return
		}
		log.Printf("Artwork %d: comment error: %v", artwork.ID, err)
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	Broadcast(ActivityEvent{
		Type:      "comment",
		ArtworkID: artwork.ID,
		Title:     artwork.Title,
		Created:   comment.CreatedAt,
	})
	c.JSON(http.StatusOK, gin.H{
		"error": "",
		"comment": CommentInfo{
			Email:   comment.Email,
			Text:    comment.Content,
			Created: comment.CreatedAt,
		},
	})
}
