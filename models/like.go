package models

type Like struct {
	CreatedAt int64
	ArtworkID uint64  `gorm:"primaryKey"`
	Artwork   Artwork `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Visitor   string  `gorm:"primaryKey;type:varchar(40)"`
}
