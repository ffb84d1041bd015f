package wishlistControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ararara127/5Scent/models"
	"github.com/ararara127/5Scent/routes"
)

func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())),
		&gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.ProductImage{},
		&models.CartItem{}, &models.Wishlist{},
		&models.Order{}, &models.OrderDetail{},
		&models.Rating{}, &models.POSTransaction{}, &models.POSItem{},
	))

	r := gin.New()
	routes.SetupRoutes(r, db)
	return db, r
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(os.Getenv("JWT_SECRET")))
	require.NoError(t, err)
	return token
}

func doJSON(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
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

func TestToggleWishlistRoundTrip(t *testing.T) {
	db, r := setupTest(t)
	user := models.User{Name: "U", Email: "wish1@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{Name: "Sandalwood", Description: "d", Price: 150000, Category: "woody"}
	require.NoError(t, db.Create(&product).Error)
	token := tokenFor(t, user)

	// first toggle adds
	w := doJSON(r, http.MethodPost, "/wishlist/toggle", token, gin.H{"product_id": product.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	var added struct {
		Added bool `json:"added"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	assert.True(t, added.Added)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/wishlist/check/%d", product.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"in_wishlist":true`)

	// second toggle removes; net effect of two toggles is the original state
	w = doJSON(r, http.MethodPost, "/wishlist/toggle", token, gin.H{"product_id": product.ID})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	assert.False(t, added.Added)

	var count int64
	require.NoError(t, db.Model(&models.Wishlist{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestToggleWishlistUnknownProduct(t *testing.T) {
	db, r := setupTest(t)
	user := models.User{Name: "U", Email: "wish2@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	w := doJSON(r, http.MethodPost, "/wishlist/toggle", tokenFor(t, user), gin.H{"product_id": 404})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWishlistListIsScopedAndPaginated(t *testing.T) {
	db, r := setupTest(t)
	user := models.User{Name: "U", Email: "wish3@example.com", Password: "x"}
	other := models.User{Name: "V", Email: "wish4@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&other).Error)

	for i := 0; i < 15; i++ {
		p := models.Product{Name: fmt.Sprintf("Scent %02d", i), Description: "d", Price: 10000, Category: "fresh"}
		require.NoError(t, db.Create(&p).Error)
		require.NoError(t, db.Create(&models.Wishlist{UserID: user.ID, ProductID: p.ID}).Error)
	}
	extra := models.Product{Name: "Other's pick", Description: "d", Price: 10000, Category: "fresh"}
	require.NoError(t, db.Create(&extra).Error)
	require.NoError(t, db.Create(&models.Wishlist{UserID: other.ID, ProductID: extra.ID}).Error)

	w := doJSON(r, http.MethodGet, "/wishlist", tokenFor(t, user), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data     []models.Wishlist `json:"data"`
		Total    int64             `json:"total"`
		PerPage  int               `json:"per_page"`
		LastPage int               `json:"last_page"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 12)
	assert.EqualValues(t, 15, resp.Total, "other users' entries must not leak in")
	assert.Equal(t, 12, resp.PerPage)
	assert.Equal(t, 2, resp.LastPage)
}
