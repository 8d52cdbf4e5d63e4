package models

import "time"

type Recipe struct {
	ID              uint     `json:"id" gorm:"primaryKey"`
	Name            string   `json:"name" gorm:"not null"`
	Instructions    string   `json:"instructions" gorm:"type:text;not null"`
	PrepTimeMinutes *int     `json:"prep_time_minutes"`
	CostEstimate    *float64 `json:"cost_estimate"`

	// AuthorID is optional; a recipe survives its author (left join on read).
	AuthorID *uint `json:"author_id"`
	Author   *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`

	Images    []Image   `json:"images,omitempty" gorm:"foreignKey:RecipeID"`
	Reviews   []Review  `json:"reviews,omitempty" gorm:"foreignKey:RecipeID"`
	CreatedAt time.Time `json:"created_at"`
}

type Image struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	RecipeID uint   `json:"recipe_id" gorm:"not null;index"`
	FilePath string `json:"file_path" gorm:"not null"`
	AltText  string `json:"alt_text"`
}

type Ingredient struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

// RecipeIngredient links Recipe and Ingredient many-to-many and carries
// the quantity for that pairing ("2 cups", "1 tbsp").
type RecipeIngredient struct {
	RecipeID     uint       `json:"recipe_id" gorm:"primaryKey;autoIncrement:false"`
	IngredientID uint       `json:"ingredient_id" gorm:"primaryKey;autoIncrement:false"`
	Quantity     string     `json:"quantity"`
	Ingredient   Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
}

// DietaryTag feeds the filter selector on the search page. Tags are not
// joined against recipes anywhere.
type DietaryTag struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	TagName string `json:"tag_name" gorm:"not null;uniqueIndex"`
}
