// Package model defines the GORM persistence models backing the sales schema.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManagerModel maps to the managers table. Name carries a unique constraint
// used by the import upsert.
type ManagerModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex"`
	City      string    `gorm:"column:city;type:varchar(255)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for ManagerModel
func (ManagerModel) TableName() string {
	return "managers"
}

// PriceModel maps to the prices table. Product carries a unique constraint
// used by the import upsert.
type PriceModel struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Product   string          `gorm:"column:product;type:varchar(255);not null;uniqueIndex"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for PriceModel
func (PriceModel) TableName() string {
	return "prices"
}

// SaleModel maps to the sales table.
type SaleModel struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID       string    `gorm:"column:order_id;type:varchar(64);not null;index"`
	Date          time.Time `gorm:"column:date;type:date;not null;index"`
	Product       string    `gorm:"column:product;type:varchar(255);not null"`
	Quantity      int       `gorm:"column:quantity;not null"`
	PurchaseType  string    `gorm:"column:purchase_type;type:varchar(255)"`
	PaymentMethod string    `gorm:"column:payment_method;type:varchar(255)"`
	ManagerID     int64     `gorm:"column:manager_id;not null;index"`
	City          string    `gorm:"column:city;type:varchar(255)"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for SaleModel
func (SaleModel) TableName() string {
	return "sales"
}
