package config

import (
	"recipe-share/models"

	"gorm.io/gorm"
)

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func uintPtr(n uint) *uint { return &n }

// Seed inserts sample data on an empty store. The first user created is
// the conventional fallback actor for unauthenticated writes. Running
// against a populated store is a no-op.
func Seed(db *gorm.DB) error {
	var users int64
	if err := db.Model(&models.User{}).Count(&users).Error; err != nil {
		return err
	}
	if users > 0 {
		return nil
	}

	seedUsers := []models.User{
		{Name: "Alex Chen"},
		{Name: "Jordan Lee"},
		{Name: "Sam Rivera"},
	}
	if err := db.Create(&seedUsers).Error; err != nil {
		return err
	}

	tags := []models.DietaryTag{
		{TagName: "dairy-free"},
		{TagName: "gluten-free"},
		{TagName: "vegan"},
		{TagName: "vegetarian"},
	}
	if err := db.Create(&tags).Error; err != nil {
		return err
	}

	ingredients := []models.Ingredient{
		{Name: "chicken breast"},
		{Name: "soy sauce"},
		{Name: "mixed vegetables"},
		{Name: "quinoa"},
		{Name: "chickpeas"},
		{Name: "tahini"},
	}
	if err := db.Create(&ingredients).Error; err != nil {
		return err
	}

	recipes := []models.Recipe{
		{
			Name:            "Chicken Stir Fry",
			Instructions:    "Slice the chicken, sear on high heat, add vegetables and soy sauce, toss until glossy.",
			PrepTimeMinutes: intPtr(25),
			CostEstimate:    floatPtr(8.50),
			AuthorID:        uintPtr(seedUsers[0].ID),
		},
		{
			Name:            "Buddha Bowl",
			Instructions:    "Cook the quinoa, roast the chickpeas, assemble with greens and drizzle tahini dressing.",
			PrepTimeMinutes: intPtr(35),
			CostEstimate:    floatPtr(6.75),
			AuthorID:        uintPtr(seedUsers[1].ID),
		},
	}
	if err := db.Create(&recipes).Error; err != nil {
		return err
	}

	images := []models.Image{
		{RecipeID: recipes[0].ID, FilePath: "/static/images/chicken_stir_fry.jpg", AltText: "Chicken stir fry in a wok"},
		{RecipeID: recipes[1].ID, FilePath: "/static/images/buddha_bowl.jpg", AltText: "Buddha bowl with tahini dressing"},
	}
	if err := db.Create(&images).Error; err != nil {
		return err
	}

	links := []models.RecipeIngredient{
		{RecipeID: recipes[0].ID, IngredientID: ingredients[0].ID, Quantity: "2 breasts"},
		{RecipeID: recipes[0].ID, IngredientID: ingredients[1].ID, Quantity: "3 tbsp"},
		{RecipeID: recipes[0].ID, IngredientID: ingredients[2].ID, Quantity: "2 cups"},
		{RecipeID: recipes[1].ID, IngredientID: ingredients[3].ID, Quantity: "1 cup"},
		{RecipeID: recipes[1].ID, IngredientID: ingredients[4].ID, Quantity: "1 can"},
		{RecipeID: recipes[1].ID, IngredientID: ingredients[5].ID, Quantity: "2 tbsp"},
	}
	if err := db.Create(&links).Error; err != nil {
		return err
	}

	reviews := []models.Review{
		{RecipeID: recipes[0].ID, UserID: seedUsers[1].ID, Rating: 5, Comment: "Best chicken stir fry recipe ever!"},
		{RecipeID: recipes[1].ID, UserID: seedUsers[2].ID, Rating: 5, Comment: "Love this buddha bowl! So healthy and filling."},
	}
	return db.Create(&reviews).Error
}
