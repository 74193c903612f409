package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleModel mirrors the 'sales' table.
type SaleModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	TotalAmount float64    `gorm:"type:numeric(12,2);not null"`
	SoldAt      time.Time  `gorm:"not null;index"`
	UserID      *uuid.UUID `gorm:"type:uuid"`
	Notes       string     `gorm:"type:text"`
	CreatedAt   time.Time

	Details []SaleDetailModel `gorm:"foreignKey:SaleID"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleDetailModel mirrors the 'sale_details' table. ProductID is not a
// hard foreign key: products may be deleted while their historical line
// items survive, which reporting accounts for.
type SaleDetailModel struct {
	ID        int64    `gorm:"primaryKey;autoIncrement"`
	SaleID    int64    `gorm:"not null;index"`
	ProductID int64    `gorm:"not null;index"`
	Quantity  float64  `gorm:"type:numeric(12,3);not null"`
	Price     float64  `gorm:"type:numeric(12,2);not null"`
	LineTotal *float64 `gorm:"type:numeric(12,2)"`
}

// TableName explicitly sets the table name for GORM.
func (SaleDetailModel) TableName() string {
	return "sale_details"
}
