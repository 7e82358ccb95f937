package service

import (
	"context"
	"fmt"
	"strings"

	"tastebook/internal/models"
	"tastebook/internal/repository"
)

// ShoppingListService builds the downloadable shopping list report from the
// user's cart aggregation.
type ShoppingListService struct {
	cartRepo repository.ShoppingCartRepository
}

func NewShoppingListService(cartRepo repository.ShoppingCartRepository) *ShoppingListService {
	return &ShoppingListService{cartRepo: cartRepo}
}

func (s *ShoppingListService) Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return s.cartRepo.Aggregate(ctx, userID)
}

// Render produces the plain-text report: a header line followed by one line
// per aggregated group. An empty cart yields the header alone.
func (s *ShoppingListService) Render(items []models.ShoppingListItem) string {
	var b strings.Builder
	b.WriteString("Shopping list:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s - %d (%s)\n", item.Name, item.Total, item.MeasurementUnit)
	}
	return b.String()
}

// BuildReport aggregates the user's cart and renders it in one step.
func (s *ShoppingListService) BuildReport(ctx context.Context, userID uint) (string, error) {
	items, err := s.Aggregate(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.Render(items), nil
}
