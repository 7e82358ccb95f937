package models

import "time"

// Favorite marks a recipe as favorited by a user.
// The (user, recipe) pair is unique; rows are hard-deleted because row
// existence is the single source of truth for the toggle state.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}
