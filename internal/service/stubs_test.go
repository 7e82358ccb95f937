package service

import (
	"context"

	"tastebook/internal/models"
	"tastebook/internal/repository"
)

// Function-field stubs for the repository interfaces. Unset fields panic,
// which surfaces unexpected calls immediately.

type stubRecipeRepo struct {
	createFn  func(ctx context.Context, recipe *models.Recipe) error
	getByIDFn func(ctx context.Context, id uint, currentUserID uint) (*models.Recipe, error)
	listFn    func(ctx context.Context, filter repository.RecipeFilter) ([]*models.Recipe, int64, error)
	updateFn  func(ctx context.Context, recipe *models.Recipe) error
	deleteFn  func(ctx context.Context, id uint) error
	existsFn  func(ctx context.Context, id uint) (bool, error)
}

func (s *stubRecipeRepo) Create(ctx context.Context, recipe *models.Recipe) error {
	return s.createFn(ctx, recipe)
}

func (s *stubRecipeRepo) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Recipe, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}

func (s *stubRecipeRepo) List(ctx context.Context, filter repository.RecipeFilter) ([]*models.Recipe, int64, error) {
	return s.listFn(ctx, filter)
}

func (s *stubRecipeRepo) Update(ctx context.Context, recipe *models.Recipe) error {
	return s.updateFn(ctx, recipe)
}

func (s *stubRecipeRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *stubRecipeRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

type stubTagRepo struct {
	getByIDFn  func(ctx context.Context, id uint) (*models.Tag, error)
	getByIDsFn func(ctx context.Context, ids []uint) ([]models.Tag, error)
	listFn     func(ctx context.Context) ([]models.Tag, error)
	createFn   func(ctx context.Context, tag *models.Tag) error
}

func (s *stubTagRepo) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubTagRepo) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	return s.getByIDsFn(ctx, ids)
}

func (s *stubTagRepo) List(ctx context.Context) ([]models.Tag, error) {
	return s.listFn(ctx)
}

func (s *stubTagRepo) Create(ctx context.Context, tag *models.Tag) error {
	return s.createFn(ctx, tag)
}

type stubIngredientRepo struct {
	getByIDFn    func(ctx context.Context, id uint) (*models.Ingredient, error)
	getByIDsFn   func(ctx context.Context, ids []uint) ([]models.Ingredient, error)
	searchFn     func(ctx context.Context, namePrefix string, limit int) ([]models.Ingredient, error)
	createFn     func(ctx context.Context, ingredient *models.Ingredient) error
	bulkUpsertFn func(ctx context.Context, ingredients []models.Ingredient) (int64, error)
}

func (s *stubIngredientRepo) GetByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubIngredientRepo) GetByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	return s.getByIDsFn(ctx, ids)
}

func (s *stubIngredientRepo) Search(ctx context.Context, namePrefix string, limit int) ([]models.Ingredient, error) {
	return s.searchFn(ctx, namePrefix, limit)
}

func (s *stubIngredientRepo) Create(ctx context.Context, ingredient *models.Ingredient) error {
	return s.createFn(ctx, ingredient)
}

func (s *stubIngredientRepo) BulkUpsert(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	return s.bulkUpsertFn(ctx, ingredients)
}

type stubFavoriteRepo struct {
	addFn    func(ctx context.Context, userID, recipeID uint) error
	removeFn func(ctx context.Context, userID, recipeID uint) error
	existsFn func(ctx context.Context, userID, recipeID uint) (bool, error)
}

func (s *stubFavoriteRepo) Add(ctx context.Context, userID, recipeID uint) error {
	return s.addFn(ctx, userID, recipeID)
}

func (s *stubFavoriteRepo) Remove(ctx context.Context, userID, recipeID uint) error {
	return s.removeFn(ctx, userID, recipeID)
}

func (s *stubFavoriteRepo) Exists(ctx context.Context, userID, recipeID uint) (bool, error) {
	return s.existsFn(ctx, userID, recipeID)
}

type stubCartRepo struct {
	addFn       func(ctx context.Context, userID, recipeID uint) error
	removeFn    func(ctx context.Context, userID, recipeID uint) error
	existsFn    func(ctx context.Context, userID, recipeID uint) (bool, error)
	aggregateFn func(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
}

func (s *stubCartRepo) Add(ctx context.Context, userID, recipeID uint) error {
	return s.addFn(ctx, userID, recipeID)
}

func (s *stubCartRepo) Remove(ctx context.Context, userID, recipeID uint) error {
	return s.removeFn(ctx, userID, recipeID)
}

func (s *stubCartRepo) Exists(ctx context.Context, userID, recipeID uint) (bool, error) {
	return s.existsFn(ctx, userID, recipeID)
}

func (s *stubCartRepo) Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return s.aggregateFn(ctx, userID)
}

type stubSubscriptionRepo struct {
	addFn         func(ctx context.Context, followerID, authorID uint) error
	removeFn      func(ctx context.Context, followerID, authorID uint) error
	existsFn      func(ctx context.Context, followerID, authorID uint) (bool, error)
	listAuthorsFn func(ctx context.Context, followerID uint, limit, offset int) ([]models.User, int64, error)
}

func (s *stubSubscriptionRepo) Add(ctx context.Context, followerID, authorID uint) error {
	return s.addFn(ctx, followerID, authorID)
}

func (s *stubSubscriptionRepo) Remove(ctx context.Context, followerID, authorID uint) error {
	return s.removeFn(ctx, followerID, authorID)
}

func (s *stubSubscriptionRepo) Exists(ctx context.Context, followerID, authorID uint) (bool, error) {
	return s.existsFn(ctx, followerID, authorID)
}

func (s *stubSubscriptionRepo) ListAuthors(ctx context.Context, followerID uint, limit, offset int) ([]models.User, int64, error) {
	return s.listAuthorsFn(ctx, followerID, limit, offset)
}

type stubUserRepo struct {
	getByIDFn       func(ctx context.Context, id uint, currentUserID uint) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	createFn        func(ctx context.Context, user *models.User) error
	updateFn        func(ctx context.Context, user *models.User) error
	listFn          func(ctx context.Context, limit, offset int, currentUserID uint) ([]models.User, int64, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.User, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func (s *stubUserRepo) List(ctx context.Context, limit, offset int, currentUserID uint) ([]models.User, int64, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
