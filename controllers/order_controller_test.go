package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Naveendeworks/emergent/entity"
	"github.com/Naveendeworks/emergent/repository"
	"github.com/Naveendeworks/emergent/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestRouter wires the order routes against a fresh in-memory database,
// without the auth middleware.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Notification{},
	))

	menu := []entity.MenuItem{
		{ID: "burger", Name: "Burger", Category: "Mains", Price: 8.99, Available: true},
		{ID: "fries", Name: "Fries", Category: "Sides", Price: 3.49, Available: true},
	}
	for i := range menu {
		require.NoError(t, db.Create(&menu[i]).Error)
	}

	notif := services.NewNotificationService(repository.NewNotificationRepository(db), "UTC")
	orderSvc := services.NewOrderService(db, repository.NewOrderRepository(db), repository.NewMenuRepository(db), notif, "UTC")
	oc := NewOrderController(orderSvc)

	r := gin.New()
	orders := r.Group("/orders")
	{
		orders.POST("", oc.Create)
		orders.GET("", oc.List)
		orders.GET("/stats/summary", oc.Stats)
		orders.GET("/view-orders", oc.ViewOrders)
		orders.PATCH("/cooking-status", oc.UpdateCookingStatus)
		orders.GET("/myorder/:orderNumber", oc.MyOrder)
		orders.GET("/:id", oc.Detail)
		orders.PUT("/:id", oc.Update)
		orders.PATCH("/:id/items", oc.AdjustItem)
		orders.PUT("/:id/complete", oc.Complete)
		orders.DELETE("/:id", oc.Cancel)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	// place an order
	w, body := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"customerName": "Sam",
		"items": []gin.H{
			{"name": "Burger", "quantity": 2},
			{"name": "Fries", "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := body["data"].(map[string]any)
	orderID := order["id"].(string)
	assert.Equal(t, float64(1), order["orderNumber"])
	assert.Equal(t, entity.OrderStatusPending, order["status"])
	assert.Equal(t, entity.PaymentCash, order["paymentMethod"])

	// it shows up as pending in the stats
	w, body = doJSON(t, r, http.MethodGet, "/orders/stats/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := body["data"].(map[string]any)
	assert.Equal(t, float64(1), stats["pending"])
	assert.Equal(t, float64(0), stats["completed"])
	assert.Nil(t, stats["averageDeliveryTime"])

	// finishing the first item keeps the order pending
	w, body = doJSON(t, r, http.MethodPatch, "/orders/cooking-status", gin.H{
		"order_id":       orderID,
		"item_name":      "Burger",
		"cooking_status": entity.CookingFinished,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, false, body["data"].(map[string]any)["order_auto_completed"])

	// finishing the last item auto-completes
	w, body = doJSON(t, r, http.MethodPatch, "/orders/cooking-status", gin.H{
		"order_id":       orderID,
		"item_name":      "Fries",
		"cooking_status": entity.CookingFinished,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["data"].(map[string]any)["order_auto_completed"])

	w, body = doJSON(t, r, http.MethodGet, "/orders/stats/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats = body["data"].(map[string]any)
	assert.Equal(t, float64(0), stats["pending"])
	assert.Equal(t, float64(1), stats["completed"])
	assert.NotNil(t, stats["averageDeliveryTime"])

	// completed orders stay readable by number
	w, body = doJSON(t, r, http.MethodGet, "/orders/myorder/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.OrderStatusCompleted, body["data"].(map[string]any)["status"])
}

func TestOrderErrorStatusCodes(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"customerName": "Sam",
		"items":        []gin.H{{"name": "Burger", "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := body["data"].(map[string]any)["id"].(string)

	t.Run("unknown menu item", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/orders", gin.H{
			"customerName": "Sam",
			"items":        []gin.H{{"name": "Pizza", "quantity": 1}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing order", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/orders/no-such-id", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad order number", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/orders/myorder/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cancel blocked while cooking", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPatch, "/orders/cooking-status", gin.H{
			"order_id":       orderID,
			"item_name":      "Burger",
			"cooking_status": entity.CookingInProcess,
		})
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = doJSON(t, r, http.MethodDelete, "/orders/"+orderID, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("double complete", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPut, "/orders/"+orderID+"/complete", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = doJSON(t, r, http.MethodPut, "/orders/"+orderID+"/complete", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
