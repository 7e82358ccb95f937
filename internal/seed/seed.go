package seed

import (
	"fmt"
	"log"

	"tastebook/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	NumRecipes     int
	NumIngredients int
	MaxDays        int
	ShouldClean    bool
}

// Seeder populates the database with a believable recipe mesh: users,
// reference data, recipes, and the relations between them.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts Options) (*Seeder, error) {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumRecipes <= 0 {
		opts.NumRecipes = 100
	}
	if opts.NumIngredients <= 0 {
		opts.NumIngredients = 150
	}
	factory, err := NewFactory(db, opts)
	if err != nil {
		return nil, err
	}
	return &Seeder{db: db, factory: factory, opts: opts}, nil
}

// ClearAll wipes every seeded table. Join rows go first to keep foreign
// keys satisfied.
func (s *Seeder) ClearAll() error {
	tables := []string{
		"favorites",
		"shopping_cart_entries",
		"subscriptions",
		"recipe_ingredients",
		"recipe_tags",
		"recipes",
		"ingredients",
		"tags",
		"users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	log.Println("database cleared")
	return nil
}

// Run seeds the full dataset.
func (s *Seeder) Run() error {
	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	tags := DefaultTags()
	if err := s.db.Create(&tags).Error; err != nil {
		return fmt.Errorf("seed tags: %w", err)
	}

	ingredients := s.factory.BuildIngredients(s.opts.NumIngredients)
	if err := s.db.CreateInBatches(ingredients, 200).Error; err != nil {
		return fmt.Errorf("seed ingredients: %w", err)
	}

	users := make([]*models.User, 0, s.opts.NumUsers)
	for i := 0; i < s.opts.NumUsers; i++ {
		user, err := s.factory.CreateUser(i)
		if err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
		users = append(users, user)
	}

	recipes := make([]*models.Recipe, 0, s.opts.NumRecipes)
	for i := 0; i < s.opts.NumRecipes; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		recipe := s.factory.BuildRecipe(author)
		if err := s.db.Create(recipe).Error; err != nil {
			return fmt.Errorf("seed recipe %d: %w", i, err)
		}
		if err := s.attachRelations(recipe, tags, ingredients); err != nil {
			return err
		}
		recipes = append(recipes, recipe)
	}

	if err := s.seedSocialMesh(users, recipes); err != nil {
		return err
	}

	log.Printf("seeded %d users, %d tags, %d ingredients, %d recipes",
		len(users), len(tags), len(ingredients), len(recipes))
	return nil
}

func (s *Seeder) attachRelations(recipe *models.Recipe, tags []models.Tag, ingredients []models.Ingredient) error {
	rng := s.factory.rng

	numTags := 1 + rng.Intn(2)
	for _, idx := range rng.Perm(len(tags))[:numTags] {
		if err := s.db.Exec(
			"INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)",
			recipe.ID, tags[idx].ID,
		).Error; err != nil {
			return fmt.Errorf("seed recipe tags: %w", err)
		}
	}

	numIngredients := 2 + rng.Intn(6)
	if numIngredients > len(ingredients) {
		numIngredients = len(ingredients)
	}
	rows := make([]models.RecipeIngredient, 0, numIngredients)
	for _, idx := range rng.Perm(len(ingredients))[:numIngredients] {
		rows = append(rows, models.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: ingredients[idx].ID,
			Amount:       1 + rng.Intn(500),
		})
	}
	if err := s.db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed recipe ingredients: %w", err)
	}
	return nil
}

// seedSocialMesh sprinkles favorites, cart entries, and subscriptions so
// listings and the shopping-list aggregation have data to chew on.
func (s *Seeder) seedSocialMesh(users []*models.User, recipes []*models.Recipe) error {
	rng := s.factory.rng

	for _, user := range users {
		for _, idx := range rng.Perm(len(recipes))[:min(rng.Intn(8), len(recipes))] {
			fav := models.Favorite{UserID: user.ID, RecipeID: recipes[idx].ID}
			if err := s.db.Create(&fav).Error; err != nil {
				return fmt.Errorf("seed favorites: %w", err)
			}
		}
		for _, idx := range rng.Perm(len(recipes))[:min(rng.Intn(5), len(recipes))] {
			entry := models.ShoppingCartEntry{UserID: user.ID, RecipeID: recipes[idx].ID}
			if err := s.db.Create(&entry).Error; err != nil {
				return fmt.Errorf("seed cart entries: %w", err)
			}
		}
		for _, idx := range rng.Perm(len(users))[:min(rng.Intn(6), len(users))] {
			author := users[idx]
			if author.ID == user.ID {
				continue
			}
			sub := models.Subscription{FollowerID: user.ID, AuthorID: author.ID}
			if err := s.db.Create(&sub).Error; err != nil {
				return fmt.Errorf("seed subscriptions: %w", err)
			}
		}
	}
	return nil
}
