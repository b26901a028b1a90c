package models

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	ArtworkID uint64  `gorm:"index;not null"`
	Artwork   Artwork `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Email     string  `gorm:"type:varchar(150);not null"`
	Content   string  `gorm:"type:text"`
}
