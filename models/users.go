package models

import "time"

// Staff roles
const (
	RoleManager = "Manager"
	RoleWaiter  = "Waiter"
	RoleChef    = "Chef"
)

type User struct {
	ID          uint      `gorm:"primaryKey"`
	Username    string    `gorm:"type:varchar(150);unique;not null"`
	FirstName   string    `gorm:"type:varchar(50)"`
	LastName    string    `gorm:"type:varchar(50)"`
	Email       string    `gorm:"type:varchar(255)"`
	Password    string    `gorm:"type:varchar(255);not null"`
	Role        string    `gorm:"type:varchar(50);not null;default:'Waiter'"`
	IsOnDuty    bool      `gorm:"not null;default:false"`
	PhoneNumber string    `gorm:"type:varchar(20)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
