package ordercontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kursatemre/qr-menu-api/models"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	ProductID string  `json:"product_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     string  `json:"phone"`
	Quantity  int     `json:"quantity"`
	Notes     *string `json:"notes"`
	CreatedBy string  `json:"created_by"`
}

type UpdateOrderStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// -------- Helpers --------

// mapOrderStatus accepts exactly the five recognized statuses; anything
// else is a validation error, never a coercion.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch status {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusReady):
		return models.OrderStatusReady, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// validateCreate rejects before any store mutation.
func validateCreate(req CreateOrderRequest) error {
	if req.ProductID == "" || req.FirstName == "" || req.LastName == "" ||
		req.Phone == "" || req.Quantity <= 0 {
		return errors.New("missing required fields")
	}
	return nil
}

// newOrder builds the row to store: every order starts in "pending" and
// created_by defaults to "customer" when the caller does not supply it.
func newOrder(req CreateOrderRequest) models.Order {
	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = models.OrderCreatedByCustomer
	}
	return models.Order{
		ProductID: req.ProductID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
		Status:    models.OrderStatusPending,
		CreatedBy: createdBy,
	}
}

// statusUpdate is the column set a transition writes: the new status and
// a refreshed updated_at.
func statusUpdate(status models.OrderStatus) map[string]interface{} {
	return map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
}

// -------- Handlers --------

// CreateOrder validates and stores a new order, then broadcasts it to the
// admin websocket listeners.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek"})
			return
		}
		if err := validateCreate(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gerekli alanlar eksik"})
			return
		}

		order := newOrder(req)
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Sipariş oluşturulamadı",
				"details": err.Error(),
			})
			return
		}

		// Attach the product summary for the response and the broadcast.
		if err := db.Preload("Product").First(&order, "id = ?", order.ID).Error; err == nil {
			broadcastNewOrder(order)
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
	}
}

// GetOrders returns all orders with the joined product summary, newest
// first.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Siparişler yüklenemedi"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// UpdateOrderStatus relabels an order with one of the five statuses and
// refreshes updated_at. There is no transition graph: any status may be
// set from any other.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek"})
			return
		}
		if req.ID == "" || req.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID ve durum gerekli"})
			return
		}

		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz durum"})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", req.ID).Updates(statusUpdate(newStatus))
		if result.Error != nil || result.RowsAffected == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Sipariş güncellenemedi"})
			return
		}

		var order models.Order
		if err := db.Preload("Product").First(&order, "id = ?", req.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Sipariş güncellenemedi"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}
