package reviewControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Review{}))

	r := gin.New()
	r.POST("/reviews", middleware.ValidateToken(db), CreateReview(db))
	r.GET("/reviews/:productId", GetProductReviews(db))
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, email string) (models.User, string) {
	t.Helper()
	user := models.User{Username: email, Email: email, Password: "secret123"}
	require.NoError(t, db.Create(&user).Error)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return user, signed
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

func TestCreateReview(t *testing.T) {
	r, db := setupTest(t)
	user, token := createUser(t, db, "reviewer@example.com")
	product := models.Product{Name: "Colombian Supremo", Price: 14.99}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(r, http.MethodPost, "/reviews", gin.H{
		"productId": product.ID,
		"rating":    5,
		"comment":   "Smooth and balanced.",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var review models.Review
	require.NoError(t, db.First(&review, "user_id = ?", user.ID).Error)
	assert.Equal(t, product.ID, review.ProductID)
	assert.Equal(t, 5, review.Rating)
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	r, db := setupTest(t)
	_, token := createUser(t, db, "reviewer@example.com")
	product := models.Product{Name: "Kenyan AA", Price: 17.00}
	require.NoError(t, db.Create(&product).Error)

	for _, rating := range []int{0, 6, -1} {
		w := doJSON(r, http.MethodPost, "/reviews", gin.H{"productId": product.ID, "rating": rating}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		errs := body["errors"].(map[string]interface{})
		assert.Equal(t, "Rating must be an integer between 1 and 5", errs["rating"])
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateReviewMissingFields(t *testing.T) {
	r, db := setupTest(t)
	_, token := createUser(t, db, "reviewer@example.com")

	w := doJSON(r, http.MethodPost, "/reviews", gin.H{"comment": "nice"}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "productId")
	assert.Contains(t, errs, "rating")
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	r, db := setupTest(t)
	_, token := createUser(t, db, "reviewer@example.com")

	w := doJSON(r, http.MethodPost, "/reviews", gin.H{"productId": "missing-id", "rating": 4}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestCreateReviewDuplicate(t *testing.T) {
	r, db := setupTest(t)
	_, token := createUser(t, db, "reviewer@example.com")
	product := models.Product{Name: "Kenyan AA", Price: 17.00}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(r, http.MethodPost, "/reviews", gin.H{"productId": product.ID, "rating": 4}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/reviews", gin.H{"productId": product.ID, "rating": 2}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You have already reviewed this product")

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetProductReviews(t *testing.T) {
	r, db := setupTest(t)
	alice, _ := createUser(t, db, "alice@example.com")
	bob, _ := createUser(t, db, "bob@example.com")
	product := models.Product{Name: "Kenyan AA", Price: 17.00}
	require.NoError(t, db.Create(&product).Error)

	older := models.Review{UserID: alice.ID, ProductID: product.ID, Rating: 2, Comment: "Too acidic."}
	require.NoError(t, db.Create(&older).Error)
	newer := models.Review{UserID: bob.ID, ProductID: product.ID, Rating: 5, Comment: "Excellent."}
	require.NoError(t, db.Create(&newer).Error)
	// Force a stable newest-first ordering.
	require.NoError(t, db.Model(&newer).Update("created_at", time.Now().Add(time.Minute)).Error)

	w := doJSON(r, http.MethodGet, "/reviews/"+product.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		AverageRating float64 `json:"averageRating"`
		TotalReviews  int     `json:"totalReviews"`
		Reviews       []struct {
			Rating int `json:"rating"`
			User   struct {
				Username string `json:"username"`
			} `json:"user"`
		} `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3.5, body.AverageRating)
	assert.Equal(t, 2, body.TotalReviews)
	require.Len(t, body.Reviews, 2)
	assert.Equal(t, 5, body.Reviews[0].Rating)
	assert.Equal(t, "bob@example.com", body.Reviews[0].User.Username)
}

func TestGetProductReviewsEmpty(t *testing.T) {
	r, db := setupTest(t)
	product := models.Product{Name: "Kenyan AA", Price: 17.00}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(r, http.MethodGet, "/reviews/"+product.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0.0, body["averageRating"])
	assert.Equal(t, 0.0, body["totalReviews"])
	assert.Len(t, body["reviews"], 0)
}

func TestGetProductReviewsUnknownProduct(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(r, http.MethodGet, "/reviews/missing-id", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
