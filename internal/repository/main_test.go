package repository

import (
	"fmt"
	"testing"
	"time"

	"tastebook/internal/database"
	"tastebook/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

var fixtureSeq int

// createTestUser inserts a user with unique email/username.
func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	fixtureSeq++
	user := models.User{
		Username: fmt.Sprintf("user%d", fixtureSeq),
		Email:    fmt.Sprintf("user%d@example.com", fixtureSeq),
		Password: "hashed",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func createTestTag(t *testing.T, db *gorm.DB, name, slug string) *models.Tag {
	t.Helper()
	tag := models.Tag{Name: name, Slug: slug, Color: "#49B64E"}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}
	return &tag
}

func createTestIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	ing := models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("create ingredient: %v", err)
	}
	return &ing
}

// createTestRecipe inserts a recipe with one tag and one ingredient row.
func createTestRecipe(t *testing.T, db *gorm.DB, author *models.User, name string) *models.Recipe {
	t.Helper()
	fixtureSeq++
	tag := createTestTag(t, db, fmt.Sprintf("Tag %d", fixtureSeq), fmt.Sprintf("tag-%d", fixtureSeq))
	ing := createTestIngredient(t, db, fmt.Sprintf("ingredient %d", fixtureSeq), "g")

	recipe := models.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        "Instructions.",
		Image:       "/media/recipes/test.jpg",
		CookingTime: 30,
		PubDate:     time.Now().Add(time.Duration(fixtureSeq) * time.Second),
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if err := db.Exec("INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)", recipe.ID, tag.ID).Error; err != nil {
		t.Fatalf("link tag: %v", err)
	}
	row := models.RecipeIngredient{RecipeID: recipe.ID, IngredientID: ing.ID, Amount: 100}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("link ingredient: %v", err)
	}
	return &recipe
}
