package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"squadtrack/internal/handlers"
	"squadtrack/internal/middleware"
	"squadtrack/internal/models"
	"squadtrack/internal/repositories"
	"squadtrack/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test_jwt_secret"

var dbCounter int64

// setupApp builds the full Fiber app against a fresh in-memory SQLite
// database, wired the same way as main.NewApp but without a broker.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	viper.Set("JWT_SECRET", testJWTSecret)
	viper.Set("APP_ENV", "test")

	// A unique DSN per test keeps the shared-cache databases isolated.
	dsn := fmt.Sprintf("file:handlers_it_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Player{},
		&models.PerformanceStat{},
		&models.TrainingSession{},
		&models.CoachEvaluation{},
	)
	if err != nil {
		t.Fatalf("failed to auto-migrate database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	playerRepo := repositories.NewGORMPlayerRepository(db)
	statRepo := repositories.NewGORMStatRepository(db)
	sessionRepo := repositories.NewGORMSessionRepository(db)
	evalRepo := repositories.NewGORMEvaluationRepository(db)

	authService := services.NewAuthService(userRepo, testJWTSecret)
	playerService := services.NewPlayerService(playerRepo, nil)
	statService := services.NewStatService(statRepo, playerRepo)
	sessionService := services.NewSessionService(sessionRepo, playerRepo)
	evalService := services.NewEvaluationService(evalRepo, playerRepo, nil)

	authHandler := handlers.NewAuthHandler(authService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	statHandler := handlers.NewStatHandler(statService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	evalHandler := handlers.NewEvaluationHandler(evalService)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "healthy",
			"message":     "squadtrack API is running",
			"environment": viper.GetString("APP_ENV"),
			"timestamp":   time.Now().Format(time.RFC3339),
		})
	})

	authHandler.RegisterRoutes(app)
	api := app.Group("/api")
	api.Post("/logout", authHandler.HandleLogout)

	protected := api.Group("", middleware.AuthRequired(authService))
	coachOnly := middleware.RoleRequired(models.RoleCoach)
	playerHandler.RegisterRoutes(protected, coachOnly)
	statHandler.RegisterRoutes(protected)
	sessionHandler.RegisterRoutes(protected, coachOnly)
	evalHandler.RegisterRoutes(protected, coachOnly)

	app.Use(handlers.NotFoundHandler)

	return app
}

// doJSON issues a request with an optional bearer token and JSON payload.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1) // -1 for no timeout
	assert.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

// registerAndLogin creates an account and returns a fresh token for it.
func registerAndLogin(t *testing.T, app *fiber.App, name, email, password, role string) string {
	t.Helper()

	payload := map[string]string{"name": name, "email": email, "password": password}
	if role != "" {
		payload["role"] = role
	}
	resp := doJSON(t, app, http.MethodPost, "/auth/register", "", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &loginResp)
	assert.NotEmpty(t, loginResp.Token)
	return loginResp.Token
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app := setupApp(t)

	// Registration accepts any non-empty secret; there is no length rule
	resp := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "A",
		"email":    "a@x.com",
		"password": "p1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	rawBody, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	resp.Body.Close()
	// The response must never expose the secret or its hash
	assert.NotContains(t, string(rawBody), "password")

	var registerResp struct {
		Message string `json:"message"`
		User    struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(rawBody, &registerResp))
	assert.Equal(t, "User registered successfully", registerResp.Message)
	assert.NotEmpty(t, registerResp.User.ID)
	assert.Equal(t, "a@x.com", registerResp.User.Email)

	// Registering the same email twice yields 400
	resp = doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "A again",
		"email":    "a@x.com",
		"password": "p1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Missing required fields yield 400
	resp = doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "b@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Login succeeds and carries the role in the user summary
	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "p1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, resp, &loginResp)
	assert.NotEmpty(t, loginResp.Token)
	assert.Equal(t, models.RolePlayer, loginResp.User.Role)

	// Wrong password and unknown email must produce identical 401 bodies
	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	wrongPassBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "nobody@x.com",
		"password": "p1",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	unknownBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, string(wrongPassBody), string(unknownBody))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	// No Authorization header
	resp := doJSON(t, app, http.MethodGet, "/api/players", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Malformed token
	resp = doJSON(t, app, http.MethodGet, "/api/players", "not.a.token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Expired token: the signature is valid but expiry has passed
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"role":    models.RoleCoach,
		"email":   "coach@x.com",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, err := expired.SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)
	resp = doJSON(t, app, http.MethodGet, "/api/players", expiredString, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// A token with time left is accepted
	valid := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"role":    models.RolePlayer,
		"email":   "p@x.com",
		"exp":     time.Now().Add(time.Minute).Unix(),
	})
	validString, err := valid.SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)
	resp = doJSON(t, app, http.MethodGet, "/api/players", validString, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestPlayerLifecycle(t *testing.T) {
	app := setupApp(t)
	playerToken := registerAndLogin(t, app, "Pat Player", "pat@x.com", "p1secret", "")
	coachToken := registerAndLogin(t, app, "Cory Coach", "cory@x.com", "c1secret", models.RoleCoach)

	// Initially empty list, not an error
	resp := doJSON(t, app, http.MethodGet, "/api/players", playerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var players []models.Player
	decodeBody(t, resp, &players)
	assert.Empty(t, players)

	// Missing name yields 400 regardless of other fields
	resp = doJSON(t, app, http.MethodPost, "/api/players", playerToken, map[string]interface{}{
		"age":      22,
		"position": "Forward",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Any authenticated identity may create a profile
	resp = doJSON(t, app, http.MethodPost, "/api/players", playerToken, map[string]interface{}{
		"name":     "Kylian Mbappé",
		"age":      26,
		"position": "Forward",
		"team":     "First Team",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Player
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Kylian Mbappé", created.Name)

	// Fetch returns the exact fields submitted
	resp = doJSON(t, app, http.MethodGet, "/api/players/"+created.ID, playerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Player
	decodeBody(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, 26, fetched.Age)
	assert.Equal(t, "Forward", fetched.Position)

	// Unknown id yields 404
	resp = doJSON(t, app, http.MethodGet, "/api/players/no-such-id", playerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Update is coach-only: player token gets 403
	update := map[string]interface{}{
		"name":     "Kylian Mbappé",
		"age":      27,
		"position": "Striker",
		"team":     "First Team",
	}
	resp = doJSON(t, app, http.MethodPut, "/api/players/"+created.ID, playerToken, update)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// The identical request with a coach token succeeds
	resp = doJSON(t, app, http.MethodPut, "/api/players/"+created.ID, coachToken, update)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Player
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Striker", updated.Position)
	assert.Equal(t, 27, updated.Age)

	// Update on a missing id yields 404, never a silent success
	resp = doJSON(t, app, http.MethodPut, "/api/players/no-such-id", coachToken, update)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Delete requires only authentication
	resp = doJSON(t, app, http.MethodDelete, "/api/players/"+created.ID, playerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/players/"+created.ID, playerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/players/"+created.ID, playerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPlayerUpdateKeepsIdentityLink(t *testing.T) {
	app := setupApp(t)
	coachToken := registerAndLogin(t, app, "Cory Coach", "cory-link@x.com", "c1secret", models.RoleCoach)

	resp := doJSON(t, app, http.MethodPost, "/api/players", coachToken, map[string]interface{}{
		"name":   "Lena Ortiz",
		"age":    20,
		"userId": "acct-1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Player
	decodeBody(t, resp, &created)
	if assert.NotNil(t, created.UserID) {
		assert.Equal(t, "acct-1", *created.UserID)
	}

	// An update body without userId rewrites the profile fields only and
	// leaves the account link in place.
	resp = doJSON(t, app, http.MethodPut, "/api/players/"+created.ID, coachToken, map[string]interface{}{
		"name":     "Lena Ortiz",
		"age":      21,
		"position": "Keeper",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Player
	decodeBody(t, resp, &updated)
	assert.Equal(t, 21, updated.Age)
	assert.Equal(t, "Keeper", updated.Position)
	if assert.NotNil(t, updated.UserID) {
		assert.Equal(t, "acct-1", *updated.UserID)
	}
}

func TestStatCreationAndDefaults(t *testing.T) {
	app := setupApp(t)
	token := registerAndLogin(t, app, "Pat Player", "pat-stats@x.com", "p1secret", "")

	resp := doJSON(t, app, http.MethodPost, "/api/players", token, map[string]interface{}{
		"name": "Kylian Mbappé",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var player models.Player
	decodeBody(t, resp, &player)

	// Missing matchDate yields 400
	resp = doJSON(t, app, http.MethodPost, "/api/stats", token, map[string]interface{}{
		"playerId": player.ID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// A stat referencing an unknown player yields 400
	resp = doJSON(t, app, http.MethodPost, "/api/stats", token, map[string]interface{}{
		"playerId":  "no-such-player",
		"matchDate": "2025-10-24",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Out-of-range passAccuracy yields 400
	resp = doJSON(t, app, http.MethodPost, "/api/stats", token, map[string]interface{}{
		"playerId":     player.ID,
		"matchDate":    "2025-10-24",
		"passAccuracy": 130.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Minimal valid stat: counters default to zero
	resp = doJSON(t, app, http.MethodPost, "/api/stats", token, map[string]interface{}{
		"playerId":  player.ID,
		"matchDate": "2025-10-24",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var stat models.PerformanceStat
	decodeBody(t, resp, &stat)
	assert.NotEmpty(t, stat.ID)
	assert.Equal(t, 0, stat.Goals)
	assert.Equal(t, 0, stat.Assists)
	assert.Equal(t, "2025-10-24", stat.MatchDate)

	resp = doJSON(t, app, http.MethodGet, "/api/stats/"+player.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var stats []models.PerformanceStat
	decodeBody(t, resp, &stats)
	assert.Len(t, stats, 1)
}

func TestCoachGatedCreates(t *testing.T) {
	app := setupApp(t)
	playerToken := registerAndLogin(t, app, "Pat Player", "pat-gates@x.com", "p1secret", "")
	coachToken := registerAndLogin(t, app, "Cory Coach", "cory-gates@x.com", "c1secret", models.RoleCoach)

	resp := doJSON(t, app, http.MethodPost, "/api/players", playerToken, map[string]interface{}{
		"name": "Marta Keller",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var player models.Player
	decodeBody(t, resp, &player)

	// Training sessions: player token denied, coach token accepted
	session := map[string]interface{}{
		"playerId":    player.ID,
		"date":        "2025-08-10",
		"duration":    75,
		"workoutType": "interval",
	}
	resp = doJSON(t, app, http.MethodPost, "/api/training-sessions", playerToken, session)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/training-sessions", coachToken, session)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Missing date yields 400 even for a coach
	resp = doJSON(t, app, http.MethodPost, "/api/training-sessions", coachToken, map[string]interface{}{
		"playerId": player.ID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/training-sessions/"+player.ID, playerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var sessions []models.TrainingSession
	decodeBody(t, resp, &sessions)
	assert.Len(t, sessions, 1)

	// Evaluations: denial for players, acceptance for coaches
	var coachLogin struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "cory-gates@x.com",
		"password": "c1secret",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &coachLogin)

	evaluation := map[string]interface{}{
		"playerId":  player.ID,
		"coachId":   coachLogin.User.ID,
		"rating":    8,
		"strengths": "positioning",
	}
	resp = doJSON(t, app, http.MethodPost, "/api/evaluations", playerToken, evaluation)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/evaluations", coachToken, evaluation)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Rating outside 1..10 yields 400
	resp = doJSON(t, app, http.MethodPost, "/api/evaluations", coachToken, map[string]interface{}{
		"playerId": player.ID,
		"coachId":  coachLogin.User.ID,
		"rating":   11,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// The listing resolves the authoring coach's name and email
	resp = doJSON(t, app, http.MethodGet, "/api/evaluations/"+player.ID, playerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var details []models.CoachEvaluationDetail
	decodeBody(t, resp, &details)
	assert.Len(t, details, 1)
	assert.Equal(t, 8, details[0].Rating)
	assert.Equal(t, "Cory Coach", details[0].CoachName)
	assert.Equal(t, "cory-gates@x.com", details[0].CoachEmail)
}

func TestCascadeDelete(t *testing.T) {
	app := setupApp(t)
	playerToken := registerAndLogin(t, app, "Pat Player", "pat-cascade@x.com", "p1secret", "")
	coachToken := registerAndLogin(t, app, "Cory Coach", "cory-cascade@x.com", "c1secret", models.RoleCoach)

	resp := doJSON(t, app, http.MethodPost, "/api/players", playerToken, map[string]interface{}{
		"name": "Aiden Torres",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var player models.Player
	decodeBody(t, resp, &player)

	resp = doJSON(t, app, http.MethodPost, "/api/stats", playerToken, map[string]interface{}{
		"playerId":  player.ID,
		"matchDate": "2025-08-01",
		"goals":     2,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/training-sessions", coachToken, map[string]interface{}{
		"playerId": player.ID,
		"date":     "2025-08-02",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/evaluations", coachToken, map[string]interface{}{
		"playerId": player.ID,
		"coachId":  "coach-id-placeholder",
		"rating":   6,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Deleting the player makes all dependent records unreachable
	resp = doJSON(t, app, http.MethodDelete, "/api/players/"+player.ID, playerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/stats/"+player.ID, playerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var stats []models.PerformanceStat
	decodeBody(t, resp, &stats)
	assert.Empty(t, stats)

	resp = doJSON(t, app, http.MethodGet, "/api/training-sessions/"+player.ID, playerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var sessions []models.TrainingSession
	decodeBody(t, resp, &sessions)
	assert.Empty(t, sessions)

	resp = doJSON(t, app, http.MethodGet, "/api/evaluations/"+player.ID, playerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var evaluations []models.CoachEvaluationDetail
	decodeBody(t, resp, &evaluations)
	assert.Empty(t, evaluations)
}

func TestLogoutHealthAndUnknownRoute(t *testing.T) {
	app := setupApp(t)

	// Logout needs no token and always acknowledges
	resp := doJSON(t, app, http.MethodPost, "/api/logout", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var logoutResp map[string]string
	decodeBody(t, resp, &logoutResp)
	assert.NotEmpty(t, logoutResp["message"])

	// Health is public
	resp = doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var health map[string]string
	decodeBody(t, resp, &health)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "test", health["environment"])
	assert.NotEmpty(t, health["timestamp"])

	// Unknown routes get the structured 404 body
	resp = doJSON(t, app, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var notFound map[string]string
	decodeBody(t, resp, &notFound)
	assert.Equal(t, "Endpoint not found", notFound["error"])
	assert.NotEmpty(t, notFound["message"])

	// Unknown paths under /api are still behind the auth gate
	resp = doJSON(t, app, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
