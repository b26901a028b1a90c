package models

// Commenter is one distinct email that has commented on an artwork.
// Row count per artwork bounds how many different emails may comment,
// not how many comments exist.
type Commenter struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	ArtworkID uint64  `gorm:"index:uniq_artwork_email,unique;not null"`
	Artwork   Artwork `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Email     string  `gorm:"type:varchar(150);index:uniq_artwork_email,unique;not null"`
}
