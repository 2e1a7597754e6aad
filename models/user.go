package models

import "time"

// User is the read-only account projection. The password hash is never
// selected, so it cannot leak through this struct.
type User struct {
	ID          uint      `gorm:"column:id" json:"id"`
	Username    string    `gorm:"column:username" json:"username"`
	Email       string    `gorm:"column:email" json:"email"`
	FirstName   string    `gorm:"column:first_name" json:"first_name"`
	LastName    string    `gorm:"column:last_name" json:"last_name"`
	Phone       string    `gorm:"column:phone" json:"phone"`
	Nationality string    `gorm:"column:nationality" json:"nationality"`
	Role        string    `gorm:"column:role" json:"role"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}
