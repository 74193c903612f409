package model

import "time"

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:varchar(255);not null"`
	Description   string  `gorm:"type:text"`
	Price         float64 `gorm:"type:numeric(12,2);not null"`
	PurchasePrice float64 `gorm:"type:numeric(12,2);not null;default:0"`
	Stock         float64 `gorm:"type:numeric(12,3);not null;default:0"`
	Active        bool    `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
