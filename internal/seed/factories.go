// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"tastebook/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the login password for every seeded user.
const DefaultPassword = "Passw0rd!seed"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rng  *rand.Rand
	opts Options
	// seeded users share one bcrypt hash; hashing per user is pointless work
	passwordHash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	return &Factory{
		db:           db,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		opts:         opts,
		passwordHash: string(hash),
	}, nil
}

// BuildUser constructs a user without persisting it.
func (f *Factory) BuildUser(n int) *models.User {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	return &models.User{
		Username:  fmt.Sprintf("%s_%s%d", first, last, n),
		Email:     fmt.Sprintf("%s.%s.%d@%s", first, last, n, gofakeit.DomainName()),
		FirstName: first,
		LastName:  last,
		Password:  f.passwordHash,
	}
}

// CreateUser persists a generated user.
func (f *Factory) CreateUser(n int) (*models.User, error) {
	user := f.BuildUser(n)
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildRecipe constructs a recipe for the given author without persisting
// it. Tags and ingredients are attached by the seeder.
func (f *Factory) BuildRecipe(author *models.User) *models.Recipe {
	dish := gofakeit.Dinner()
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	pubDate := time.Now().
		Add(-time.Duration(f.rng.Intn(maxDays)) * 24 * time.Hour).
		Add(-time.Duration(f.rng.Intn(24)) * time.Hour).
		Add(-time.Duration(f.rng.Intn(60)) * time.Minute)

	return &models.Recipe{
		AuthorID:    author.ID,
		Name:        dish,
		Text:        gofakeit.Paragraph(1, 3, 8, "\n"),
		Image:       fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		CookingTime: 5 + f.rng.Intn(175),
		PubDate:     pubDate,
	}
}

// DefaultTags is the built-in tag fixture applied before randomized seeding.
func DefaultTags() []models.Tag {
	return []models.Tag{
		{Name: "Breakfast", Slug: "breakfast", Color: "#E26C2D"},
		{Name: "Lunch", Slug: "lunch", Color: "#49B64E"},
		{Name: "Dinner", Slug: "dinner", Color: "#8775D2"},
		{Name: "Dessert", Slug: "dessert", Color: "#F9A62B"},
	}
}

var measurementUnits = []string{"g", "kg", "ml", "l", "pcs", "tbsp", "tsp", "cup"}

// BuildIngredients generates n distinct ingredients with plausible units.
func (f *Factory) BuildIngredients(n int) []models.Ingredient {
	seen := make(map[string]struct{}, n)
	ingredients := make([]models.Ingredient, 0, n)
	for len(ingredients) < n {
		var name string
		switch f.rng.Intn(4) {
		case 0:
			name = gofakeit.Fruit()
		case 1:
			name = gofakeit.Vegetable()
		case 2:
			name = gofakeit.Lunch()
		default:
			name = gofakeit.Snack()
		}
		unit := measurementUnits[f.rng.Intn(len(measurementUnits))]
		key := name + "/" + unit
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ingredients = append(ingredients, models.Ingredient{
			Name:            name,
			MeasurementUnit: unit,
		})
	}
	return ingredients
}
