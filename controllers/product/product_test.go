package productcontroller_test

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

type productList struct {
	Data     []models.Product `json:"data"`
	Total    int64            `json:"total"`
	PerPage  int              `json:"per_page"`
	LastPage int              `json:"last_page"`
}

func seed(t *testing.T, db *gorm.DB, name, category string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, Description: "d", Price: price, Stock: 5, Category: category}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestListProductsFiltersAndSorts(t *testing.T) {
	db, r := setupTest(t)
	seed(t, db, "Amber Essence", "oriental", 50000)
	seed(t, db, "Amber Noir", "oriental", 125000)
	seed(t, db, "Citrus Splash", "fresh", 30000)

	// category filter
	w := doJSON(r, http.MethodGet, "/products?category=oriental", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp productList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)

	// substring search on name
	w = doJSON(r, http.MethodGet, "/products?search=Noir", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Amber Noir", resp.Data[0].Name)

	// price sort, both directions
	w = doJSON(r, http.MethodGet, "/products?sort=price_low", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, 30000.0, resp.Data[0].Price)

	w = doJSON(r, http.MethodGet, "/products?sort=price_high", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 125000.0, resp.Data[0].Price)
}

func TestListProductsPageSize(t *testing.T) {
	db, r := setupTest(t)
	for i := 0; i < 15; i++ {
		seed(t, db, fmt.Sprintf("Scent %02d", i), "fresh", 10000)
	}

	w := doJSON(r, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp productList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 12)
	assert.EqualValues(t, 15, resp.Total)
	assert.Equal(t, 2, resp.LastPage)

	w = doJSON(r, http.MethodGet, "/products?page=2", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
}

func TestShowProduct(t *testing.T) {
	db, r := setupTest(t)
	p := seed(t, db, "Amber Noir", "oriental", 125000)
	require.NoError(t, db.Create(&models.ProductImage{ProductID: p.ID, ImageURL: "/img/1.jpg", IsPrimary: true}).Error)

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", p.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, p.Name, resp.Product.Name)
	require.Len(t, resp.Product.Images, 1)

	w = doJSON(r, http.MethodGet, "/products/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Bestsellers rank by number of order lines referencing the product, NOT
// units sold; ties break on product id ascending.
func TestBestsellersRankingAndTieBreak(t *testing.T) {
	db, r := setupTest(t)
	popular := seed(t, db, "Crowd Favorite", "floral", 60000)
	tieA := seed(t, db, "Tie A", "floral", 60000)
	tieB := seed(t, db, "Tie B", "floral", 60000)

	user := models.User{Name: "B", Email: "best@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	makeOrder := func(lines []models.OrderDetail) {
		order := models.Order{
			UserID: user.ID, TotalPrice: 1, Status: models.OrderStatusPending,
			PaymentMethod: "cod", PaymentStatus: models.PaymentStatusUnpaid,
			ShippingAddress: "addr", OrderDetails: lines,
		}
		require.NoError(t, db.Create(&order).Error)
	}

	// popular: 2 lines (qty 1 each); tieA and tieB: 1 line each, but tieB's
	// single line has a huge quantity - line count still wins.
	makeOrder([]models.OrderDetail{{ProductID: popular.ID, Quantity: 1, Price: 60000}})
	makeOrder([]models.OrderDetail{{ProductID: popular.ID, Quantity: 1, Price: 60000}})
	makeOrder([]models.OrderDetail{{ProductID: tieA.ID, Quantity: 1, Price: 60000}})
	makeOrder([]models.OrderDetail{{ProductID: tieB.ID, Quantity: 100, Price: 60000}})

	w := doJSON(r, http.MethodGet, "/products/bestsellers/list", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bestsellers []struct {
			ID                uint  `json:"id"`
			OrderDetailsCount int64 `json:"order_details_count"`
		} `json:"bestsellers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bestsellers, 3)
	assert.Equal(t, popular.ID, resp.Bestsellers[0].ID)
	assert.EqualValues(t, 2, resp.Bestsellers[0].OrderDetailsCount)
	// tie between A and B resolves to the lower product id
	assert.Equal(t, tieA.ID, resp.Bestsellers[1].ID)
	assert.Equal(t, tieB.ID, resp.Bestsellers[2].ID)
}

func TestProductCRUDRequiresAdmin(t *testing.T) {
	db, r := setupTest(t)
	user := models.User{Name: "U", Email: "plain@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	body := gin.H{"name": "New", "description": "d", "price": 1000, "stock": 1, "category": "fresh"}
	w := doJSON(r, http.MethodPost, "/products", tokenFor(t, user), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/products", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateUpdateDeleteProduct(t *testing.T) {
	db, r := setupTest(t)
	admin := models.User{Name: "A", Email: "padmin@example.com", Password: "x", IsAdmin: true}
	require.NoError(t, db.Create(&admin).Error)
	token := tokenFor(t, admin)

	w := doJSON(r, http.MethodPost, "/products", token, gin.H{
		"name": "Velvet Iris", "description": "powdery iris", "price": 145000,
		"stock": 20, "category": "floral",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Product.ID)

	// negative price rejected
	w = doJSON(r, http.MethodPost, "/products", token, gin.H{
		"name": "Broken", "description": "d", "price": -5, "stock": 1, "category": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// partial update leaves other fields alone
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/products/%d", created.Product.ID), token,
		gin.H{"price": 150000})
	require.Equal(t, http.StatusOK, w.Code)

	var after models.Product
	require.NoError(t, db.First(&after, created.Product.ID).Error)
	assert.Equal(t, 150000.0, after.Price)
	assert.Equal(t, "Velvet Iris", after.Name)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.Product.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.Product.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	_, r := setupTest(t)
	w := doJSON(r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
