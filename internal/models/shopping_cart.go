package models

import "time"

// ShoppingCartEntry queues a recipe for shopping-list aggregation.
// The unique index is declared on the persisted fields (user_id, recipe_id).
type ShoppingCartEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_cart_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

// TableName specifies the table name for GORM
func (ShoppingCartEntry) TableName() string {
	return "shopping_cart_entries"
}

// ShoppingListItem is one aggregated group of the shopping list report:
// total amount per (ingredient name, measurement unit) pair.
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Total           int    `json:"total"`
}
