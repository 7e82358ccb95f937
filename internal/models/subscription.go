package models

import "time"

// Subscription is a directional follow: follower receives the author's
// recipes in their subscription feed. follower != author is enforced at
// write time; the (follower, author) pair is unique.
type Subscription struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_subscription_follower_author" json:"follower_id"`
	AuthorID   uint      `gorm:"not null;uniqueIndex:idx_subscription_follower_author" json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"-"`
	Author   User `gorm:"foreignKey:AuthorID" json:"-"`
}

// TableName specifies the table name for GORM
func (Subscription) TableName() string {
	return "subscriptions"
}

// SubscribedAuthor is the author-with-recipes view returned when subscribing
// and by the subscriptions listing.
type SubscribedAuthor struct {
	Email        string          `json:"email"`
	ID           uint            `json:"id"`
	Username     string          `json:"username"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	IsSubscribed bool            `json:"is_subscribed"`
	Recipes      []RecipeSummary `json:"recipes"`
	RecipesCount int64           `json:"recipes_count"`
}
