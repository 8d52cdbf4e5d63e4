package models

import "time"

// Review is a 1–5 rating with an optional comment, attached to a recipe
// and a user. Reviews are append-only: no update or delete path exists.
type Review struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	RecipeID uint `json:"recipe_id" gorm:"not null;index"`
	UserID   uint `json:"user_id" gorm:"not null"`
	User     User `json:"user,omitempty" gorm:"foreignKey:UserID"`

	// Rating is range-checked at the handler boundary, not by the store.
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
