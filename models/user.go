package models

import "time"

// User is an identity that authors recipes and posts reviews. Users are
// created by the seed step only — there is no registration surface.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
