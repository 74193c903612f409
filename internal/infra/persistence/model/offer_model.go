package model

import "time"

// OfferModel mirrors the 'offers' table.
type OfferModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:numeric(12,2);not null"`
	Active      bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []OfferProductModel `gorm:"foreignKey:OfferID"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// OfferProductModel mirrors the 'offer_products' membership join table.
type OfferProductModel struct {
	OfferID   int64 `gorm:"primaryKey"`
	ProductID int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (OfferProductModel) TableName() string {
	return "offer_products"
}
