package models

import "time"

// Attendance records a single shift. A row is created on clock-in and its
// ClockOutTime filled on clock-out; nil means the shift is still open.
type Attendance struct {
	ID           uint       `gorm:"primaryKey"`
	StaffID      uint       `gorm:"not null;index"`
	Staff        User       `gorm:"foreignKey:StaffID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ClockInTime  time.Time  `gorm:"not null"`
	ClockOutTime *time.Time
}
