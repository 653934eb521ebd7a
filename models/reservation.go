package models

import "time"

// Reservation status values
const (
	ReservationPending   = "Pending"
	ReservationConfirmed = "Confirmed"
	ReservationCancelled = "Cancelled"
)

// Reservation links one customer to one table for an exact date and time
// slot. The composite unique index on (table_id, reservation_date,
// reservation_time) guarantees at most one reservation per slot even when
// two bookings race past the availability check.
type Reservation struct {
	ID              uint      `gorm:"primaryKey"`
	CustomerID      uint      `gorm:"not null"`
	Customer        Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	TableID         uint      `gorm:"not null;uniqueIndex:idx_table_slot"`
	Table           Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	NumberOfGuests  int       `gorm:"not null"`
	ReservationDate string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_table_slot"`
	ReservationTime string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_table_slot"`
	Status          string    `gorm:"type:varchar(10);not null;default:'Pending'"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}
