// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"tastebook/internal/config"
	"tastebook/internal/database"
	"tastebook/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numRecipes := flag.Int("recipes", 100, "Number of recipes to create")
	numIngredients := flag.Int("ingredients", 150, "Number of ingredients to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d recipes, %d ingredients, clean=%v\n",
		*numUsers, *numRecipes, *numIngredients, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeder, err := seed.NewSeeder(db, seed.Options{
		NumUsers:       *numUsers,
		NumRecipes:     *numRecipes,
		NumIngredients: *numIngredients,
		ShouldClean:    *shouldClean,
	})
	if err != nil {
		log.Fatalf("Failed to create seeder: %v", err)
	}

	if err := seeder.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Done. Every seeded user logs in with password %q", seed.DefaultPassword)
}
