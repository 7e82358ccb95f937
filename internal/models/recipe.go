package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe is the central entity: authored content with tags and measured
// ingredients. Mutated only by its author; pub_date is set at creation and
// never changes.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"not null;index" json:"-"`
	Author      User      `gorm:"foreignKey:AuthorID" json:"author"`
	Name        string    `gorm:"not null" json:"name"`
	Image       string    `json:"image"`
	Text        string    `gorm:"not null" json:"text"`
	CookingTime int       `gorm:"not null" json:"cooking_time"`
	PubDate     time.Time `gorm:"autoCreateTime;index" json:"pub_date"`

	Tags        []Tag              `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`

	// IsFavorited reports whether the requesting user has a Favorite row for
	// this recipe; computed at query time, false for anonymous requests.
	IsFavorited bool `gorm:"->" json:"is_favorited"`
	// IsInShoppingCart reports whether the requesting user has a cart entry
	// for this recipe; computed at query time, false for anonymous requests.
	IsInShoppingCart bool `gorm:"->" json:"is_in_shopping_cart"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// RecipeIngredient joins a recipe to an ingredient with a quantity.
// The (recipe, ingredient) pair is unique within a recipe; duplicates are
// rejected at write time before the constraint ever fires.
type RecipeIngredient struct {
	ID           uint `gorm:"primaryKey" json:"-"`
	RecipeID     uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"-"`
	IngredientID uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"id"`
	Amount       int  `gorm:"not null" json:"amount"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"-"`

	// Flattened from Ingredient for the read projection.
	Name            string `gorm:"-" json:"name"`
	MeasurementUnit string `gorm:"-" json:"measurement_unit"`
}

// AfterFind flattens the preloaded ingredient into the projection fields.
func (ri *RecipeIngredient) AfterFind(_ *gorm.DB) error {
	if ri.Ingredient.ID != 0 {
		ri.Name = ri.Ingredient.Name
		ri.MeasurementUnit = ri.Ingredient.MeasurementUnit
	}
	return nil
}

// RecipeSummary is the compact recipe view returned by toggle endpoints and
// embedded in subscription listings.
type RecipeSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// Summary projects a recipe into its compact view.
func (r *Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}
