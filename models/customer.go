package models

import "time"

type Customer struct {
	ID          uint      `gorm:"primaryKey"`
	FirstName   string    `gorm:"type:varchar(50);not null"`
	LastName    string    `gorm:"type:varchar(50);not null"`
	PhoneNumber string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
