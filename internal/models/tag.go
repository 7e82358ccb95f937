package models

// Tag is reference data used to categorize recipes (breakfast, lunch, ...).
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"unique;not null" json:"name"`
	Slug  string `gorm:"unique;not null" json:"slug"`
	Color string `json:"color"`
}
