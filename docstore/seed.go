// Package docstore seeds the standalone MongoDB document store with
// sample favorites and reviews. The web application never reads or
// writes this store; it is populated by cmd/seed-mongo only.
package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const DatabaseName = "campus_meal_plan"

type Favorite struct {
	UserID   string    `bson:"user_id"`
	RecipeID int       `bson:"recipe_id"`
	SavedAt  time.Time `bson:"saved_at"`
	Notes    string    `bson:"notes"`
}

// Review is the document-store review shape. It resembles the
// relational review but is independent of it; nothing unifies the two.
type Review struct {
	RecipeID  int       `bson:"recipe_id"`
	UserID    string    `bson:"user_id"`
	Rating    int       `bson:"rating"`
	Comment   string    `bson:"comment"`
	CreatedAt time.Time `bson:"created_at"`
}

func SampleFavorites(now time.Time) []Favorite {
	return []Favorite{
		{UserID: "U001", RecipeID: 101, SavedAt: now, Notes: "Loved this for meal prep!"},
		{UserID: "U002", RecipeID: 203, SavedAt: now, Notes: "Try with extra sauce next time."},
		{UserID: "U001", RecipeID: 3, SavedAt: now, Notes: "Great for quick dinners"},
		{UserID: "U003", RecipeID: 2, SavedAt: now, Notes: "Healthy and delicious"},
	}
}

func SampleReviews(now time.Time) []Review {
	return []Review{
		{RecipeID: 101, UserID: "U001", Rating: 5, Comment: "Loved this meal! Perfect balance of flavor and nutrition.", CreatedAt: time.Date(2025, 10, 18, 21, 15, 0, 0, time.UTC)},
		{RecipeID: 203, UserID: "U002", Rating: 4, Comment: "Pretty good, but portion size could be bigger.", CreatedAt: time.Date(2025, 10, 18, 21, 20, 0, 0, time.UTC)},
		{RecipeID: 107, UserID: "U003", Rating: 3, Comment: "It was okay — would add more spice next time.", CreatedAt: time.Date(2025, 10, 18, 21, 25, 0, 0, time.UTC)},
		{RecipeID: 1, UserID: "U001", Rating: 5, Comment: "Best chicken stir fry recipe ever!", CreatedAt: now},
		{RecipeID: 2, UserID: "U002", Rating: 5, Comment: "Love this buddha bowl! So healthy and filling.", CreatedAt: now},
	}
}

// Seed clears and repopulates the favorites and reviews collections and
// ensures their indexes. Returns the number of documents inserted into
// each collection.
func Seed(ctx context.Context, client *mongo.Client) (favorites, reviews int, err error) {
	db := client.Database(DatabaseName)
	favCol := db.Collection("favorites")
	revCol := db.Collection("reviews")

	if _, err = favCol.DeleteMany(ctx, bson.D{}); err != nil {
		return 0, 0, fmt.Errorf("clear favorites: %w", err)
	}
	if _, err = revCol.DeleteMany(ctx, bson.D{}); err != nil {
		return 0, 0, fmt.Errorf("clear reviews: %w", err)
	}

	now := time.Now().UTC()

	favDocs := make([]interface{}, 0, 4)
	for _, f := range SampleFavorites(now) {
		favDocs = append(favDocs, f)
	}
	if _, err = favCol.InsertMany(ctx, favDocs); err != nil {
		return 0, 0, fmt.Errorf("insert favorites: %w", err)
	}

	revDocs := make([]interface{}, 0, 5)
	for _, r := range SampleReviews(now) {
		revDocs = append(revDocs, r)
	}
	if _, err = revCol.InsertMany(ctx, revDocs); err != nil {
		return len(favDocs), 0, fmt.Errorf("insert reviews: %w", err)
	}

	indexes := []struct {
		col *mongo.Collection
		key string
	}{
		{favCol, "user_id"},
		{favCol, "recipe_id"},
		{revCol, "recipe_id"},
		{revCol, "user_id"},
	}
	for _, ix := range indexes {
		model := mongo.IndexModel{Keys: bson.D{{Key: ix.key, Value: 1}}}
		if _, err = ix.col.Indexes().CreateOne(ctx, model); err != nil {
			return len(favDocs), len(revDocs), fmt.Errorf("create index %s.%s: %w", ix.col.Name(), ix.key, err)
		}
	}

	return len(favDocs), len(revDocs), nil
}
