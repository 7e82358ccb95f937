package models

// Ingredient is reference data, bulk-loaded from CSV and rarely mutated.
// The same name can appear with different measurement units; the pair is
// what identifies an ingredient.
type Ingredient struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"not null;uniqueIndex:idx_ingredient_name_unit" json:"name"`
	MeasurementUnit string `gorm:"not null;uniqueIndex:idx_ingredient_name_unit" json:"measurement_unit"`
}
