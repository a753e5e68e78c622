package authControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
	"github.com/yapzhanrui2/E-Commerce-Website/models"
)

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}, &models.Review{}, &models.Order{}, &models.OrderItem{}))

	r := gin.New()
	r.POST("/auth/register", Register(db))
	r.POST("/auth/login", Login(db))
	r.GET("/auth/me", middleware.ValidateToken(db), Me())
	r.POST("/auth/logout", middleware.ValidateToken(db), Logout())
	return r, db
}

func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	r, db := setupTest(t)

	w := doJSON(r, http.MethodPost, "/auth/register", gin.H{
		"username": "jane",
		"email":    "jane@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", user["email"])
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, w.Body.String(), "secret123")
	assert.NotContains(t, user, "password")

	// Stored password is hashed, not plaintext.
	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "jane@example.com").Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, stored.CheckPassword("secret123"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db := setupTest(t)

	w := doJSON(r, http.MethodPost, "/auth/register", gin.H{
		"username": "jane", "email": "jane@example.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/register", gin.H{
		"username": "imposter", "email": "jane@example.com", "password": "other456",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User with this email already exists")

	// First user's record is untouched.
	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "jane", users[0].Username)
}

func TestLogin(t *testing.T) {
	r, _ := setupTest(t)
	doJSON(r, http.MethodPost, "/auth/register", gin.H{
		"username": "jane", "email": "jane@example.com", "password": "secret123",
	}, "")

	w := doJSON(r, http.MethodPost, "/auth/login", gin.H{
		"email": "jane@example.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r, _ := setupTest(t)
	doJSON(r, http.MethodPost, "/auth/register", gin.H{
		"username": "jane", "email": "jane@example.com", "password": "secret123",
	}, "")

	unknown := doJSON(r, http.MethodPost, "/auth/login", gin.H{
		"email": "nobody@example.com", "password": "secret123",
	}, "")
	wrongPassword := doJSON(r, http.MethodPost, "/auth/login", gin.H{
		"email": "jane@example.com", "password": "wrong",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknown.Body.String(), wrongPassword.Body.String())
}

func TestMe(t *testing.T) {
	r, _ := setupTest(t)
	w := doJSON(r, http.MethodPost, "/auth/register", gin.H{
		"username": "jane", "email": "jane@example.com", "password": "secret123",
	}, "")
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	token := body["token"].(string)

	w = doJSON(r, http.MethodGet, "/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@example.com")
	assert.NotContains(t, w.Body.String(), "password")

	w = doJSON(r, http.MethodGet, "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	r, _ := setupTest(t)
	w := doJSON(r, http.MethodPost, "/auth/register", gin.H{
		"username": "jane", "email": "jane@example.com", "password": "secret123",
	}, "")
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	token := body["token"].(string)

	w = doJSON(r, http.MethodPost, "/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logout successful")
}
