package models

import "time"

// Table status values
const (
	TableAvailable = "available"
	TableReserved  = "reserved"
	TableOccupied  = "occupied"
)

type Table struct {
	ID          uint      `gorm:"primaryKey"`
	TableNumber string    `gorm:"type:varchar(10);unique;not null"`
	Capacity    int       `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'available'"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
