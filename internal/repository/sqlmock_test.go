package repository

import (
	"context"
	"testing"

	"tastebook/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestShoppingCartRepository_AggregateQueryShape(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewShoppingCartRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"name", "measurement_unit", "total"}).
		AddRow("flour", "g", 500).
		AddRow("milk", "ml", 300)
	mock.ExpectQuery(`SELECT ingredients\.name AS name, ingredients\.measurement_unit AS measurement_unit, SUM\(recipe_ingredients\.amount\) AS total FROM "recipe_ingredients" JOIN ingredients ON ingredients\.id = recipe_ingredients\.ingredient_id JOIN shopping_cart_entries ON shopping_cart_entries\.recipe_id = recipe_ingredients\.recipe_id WHERE shopping_cart_entries\.user_id = \$1 GROUP BY ingredients\.name, ingredients\.measurement_unit ORDER BY ingredients\.name ASC`).
		WithArgs(1).
		WillReturnRows(rows)

	items, err := repo.Aggregate(ctx, 1)
	assert.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.ShoppingListItem{Name: "flour", MeasurementUnit: "g", Total: 500}, items[0])
	assert.Equal(t, models.ShoppingListItem{Name: "milk", MeasurementUnit: "ml", Total: 300}, items[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIngredientRepository_SearchQueryShape(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	t.Run("Prefix filter is case insensitive and ordered", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "ingredients" WHERE LOWER\(name\) LIKE LOWER\(\$1\) ORDER BY name ASC LIMIT \$2`).
			WithArgs("car%", 20).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "measurement_unit"}).
				AddRow(1, "Carrot", "g"))

		ingredients, err := repo.Search(ctx, "car", 20)
		assert.NoError(t, err)
		require.Len(t, ingredients, 1)
		assert.Equal(t, "Carrot", ingredients[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty prefix skips the LIKE clause", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "ingredients" ORDER BY name ASC LIMIT \$1`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "measurement_unit"}))

		_, err := repo.Search(ctx, "", 5)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShoppingCartRepository_RemoveRowsAffected(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewShoppingCartRepository(db)
	ctx := context.Background()

	t.Run("Deletes the pair row", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "shopping_cart_entries" WHERE user_id = \$1 AND recipe_id = \$2`).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Remove(ctx, 1, 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing pair maps to not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "shopping_cart_entries" WHERE user_id = \$1 AND recipe_id = \$2`).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Remove(ctx, 1, 2)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
