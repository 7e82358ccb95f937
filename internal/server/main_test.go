package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tastebook/internal/config"
	"tastebook/internal/database"
	"tastebook/internal/models"
	"tastebook/internal/repository"
	"tastebook/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server over an in-memory SQLite database. The
// prometheus middleware is left unset so repeated construction inside one
// test binary does not re-register collectors.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := &config.Config{
		JWTSecret: "test-secret-key-for-handler-tests",
		MediaDir:  t.TempDir(),
	}

	s := &Server{config: cfg, db: db}
	s.userRepo = repository.NewUserRepository(db)
	s.tagRepo = repository.NewTagRepository(db)
	s.ingredientRepo = repository.NewIngredientRepository(db)
	s.recipeRepo = repository.NewRecipeRepository(db)
	s.favoriteRepo = repository.NewFavoriteRepository(db)
	s.cartRepo = repository.NewShoppingCartRepository(db)
	s.subRepo = repository.NewSubscriptionRepository(db)

	s.imageService = service.NewImageService(cfg)
	s.userService = service.NewUserService(s.userRepo)
	s.recipeService = service.NewRecipeService(s.recipeRepo, s.tagRepo, s.ingredientRepo, s.imageService)
	s.relationService = service.NewRelationService(s.recipeRepo, s.favoriteRepo, s.cartRepo)
	s.shoppingListService = service.NewShoppingListService(s.cartRepo)
	s.subscriptionService = service.NewSubscriptionService(s.userRepo, s.subRepo, s.recipeRepo)

	return s, db
}

// newTestServerWithRedis additionally wires a miniredis-backed client, used
// by the logout/refresh revocation tests.
func newTestServerWithRedis(t *testing.T) (*Server, *gorm.DB, *miniredis.Miniredis) {
	t.Helper()
	s, db := newTestServer(t)
	mr := miniredis.RunT(t)
	s.redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return s, db, mr
}

// newTestApp builds a Fiber app with only the routes under test, skipping
// the rate-limited middleware chain.
func newTestApp(s *Server) *fiber.App {
	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

func createHandlerTestUser(t *testing.T, s *Server, db *gorm.DB, username, password string) (*models.User, string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := s.generateToken(user.ID, user.Username)
	require.NoError(t, err)
	return &user, token
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
