package models

import "time"

// Order is one line item: quantity is fixed at 1 and TotalPrice carries the
// product's price at order time. Rows are insert-only.
type Order struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint    `gorm:"not null" json:"user_id"`
	User       User    `gorm:"foreignKey:UserID" json:"-"`
	ProductID  uint    `gorm:"not null" json:"product_id"`
	Product    Product `gorm:"foreignKey:ProductID" json:"-"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	TotalPrice float64 `gorm:"not null" json:"total_price"`
	Reference  string  `gorm:"index" json:"reference"`
	CreatedAt  time.Time
}
