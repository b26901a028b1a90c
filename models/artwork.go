package models

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gallery/db"

	"gorm.io/gorm"
)

var (
	// ErrCommentersFull is returned when a new email tries to comment on an
	// artwork that already has the maximum number of distinct commenters.
	ErrCommentersFull = errors.New("no more commenters allowed for this artwork")
)

type Artwork struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(300)"`
	Description string `gorm:"type:text"`
	FileName    string `gorm:"type:varchar(300);index:uniq_file_name,unique;not null"`
	MimeType    string `gorm:"type:varchar(50)"`
	Size        int64
	Width       uint16
	Height      uint16
	ThumbSize   int64
	ThumbWidth  uint16
	ThumbHeight uint16
	Likes       uint64      `gorm:"not null;default 0"`
	Comments    []Comment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Commenters  []Commenter `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// NewFileName derives the stored name for an upload from the current time.
// The original extension is kept (lowercased) so mime sniffing stays cheap.
func NewFileName(originalName string) string {
	return strconv.FormatInt(time.Now().UnixNano(), 10) + strings.ToLower(filepath.Ext(originalName))
}

func (a *Artwork) BeforeSave(tx *gorm.DB) (err error) {
	// Restrict the characters in FileName
	var name strings.Builder
	for i, c := range a.FileName {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
			(c == '.' && i > 0) || (c == '-') || (c == '_') {

			name.WriteRune(c)
		} else {
			name.WriteString("_")
		}
	}
	a.FileName = name.String()
	return
}

// GetPath returns the storage path of the original image, e.g. "art/169...421.jpg"
func (a *Artwork) GetPath() string {
	return "art/" + a.FileName
}

// GetThumbPath returns the storage path of the thumbnail. Thumbs are always JPEG.
func (a *Artwork) GetThumbPath() string {
	base := strings.TrimSuffix(a.FileName, filepath.Ext(a.FileName))
	return "thumb/" + base + "_thumb.jpg"
}

func ArtworkCount() (count int64, err error) {
	err = db.Instance.Model(&Artwork{}).Count(&count).Error
	return
}

// AddComment appends a timestamped comment and registers the email as a
// commenter of this artwork. A new email is rejected with ErrCommentersFull
// once the artwork already has maxCommenters distinct commenters; emails
// already among the commenters may always comment again.
func (a *Artwork) AddComment(email, content string, maxCommenters int) (*Comment, error) {
	var existing int64
	result := db.Instance.Model(&Commenter{}).
		Where("artwork_id = ? AND email = ?", a.ID, email).
		Count(&existing)
	if result.Error != nil {
		return nil, result.Error
	}
	if existing == 0 {
		var total int64
		if err := db.Instance.Model(&Commenter{}).Where("artwork_id = ?", a.ID).Count(&total).Error; err != nil {
			return nil, err
		}
		if total >= int64(maxCommenters) {
			return nil, ErrCommentersFull
		}
		commenter := Commenter{ArtworkID: a.ID, Email: email}
		if err := db.Instance.Create(&commenter).Error; err != nil {
			return nil, err
		}
	}
	comment := Comment{
		ArtworkID: a.ID,
		Email:     email,
		Content:   content,
	}
	if err := db.Instance.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// AddLike records a like from the given visitor token. Returns false when
// this visitor already liked the artwork (the counter is left untouched).
func (a *Artwork) AddLike(visitor string) (bool, error) {
	like := Like{ArtworkID: a.ID, Visitor: visitor}
	result := db.Instance.Where(&like).FirstOrCreate(&like)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		// Already liked
		return false, nil
	}
	err := db.Instance.Model(a).Update("likes", gorm.Expr("likes + 1")).Error
	return err == nil, err
}
