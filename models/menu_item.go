package models

import "time"

type MenuItem struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Price      float64   `gorm:"type:decimal(6,2);not null"`
	Available  bool      `gorm:"not null;default:true"`
	BestSeller bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}
