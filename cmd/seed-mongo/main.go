// Command seed-mongo populates the standalone document store with
// sample favorites and reviews. It is independent of the web server and
// reads its connection string from MONGO_URI.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"recipe-share/docstore"

	_ "github.com/joho/godotenv/autoload"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017/"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("Disconnect:", err)
		}
	}()

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB: ", err)
	}

	favorites, reviews, err := docstore.Seed(ctx, client)
	if err != nil {
		log.Fatal("Seeding failed: ", err)
	}

	log.Printf("Inserted %d favorites and %d reviews into %s", favorites, reviews, docstore.DatabaseName)
	log.Println("MongoDB initialization complete!")
}
