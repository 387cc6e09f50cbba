package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"saferide/internal/models"
	"saferide/internal/pdf"
	"saferide/internal/services"
)

type OrderHandler struct {
	service  *services.OrderService
	waybills *pdf.WaybillGenerator
}

type createOrderRequest struct {
	SenderID     *int   `json:"senderId" binding:"required"`
	ReceiverID   *int   `json:"receiverId" binding:"required"`
	SenderName   string `json:"senderName" binding:"required"`
	ReceiverName string `json:"receiverName"`
	Origin       string `json:"origin" binding:"required"`
	Destination  string `json:"destination" binding:"required"`
}

func NewOrderHandler(service *services.OrderService, waybills *pdf.WaybillGenerator) *OrderHandler {
	return &OrderHandler{service: service, waybills: waybills}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := &models.Order{
		SenderID:     *req.SenderID,
		ReceiverID:   *req.ReceiverID,
		SenderName:   req.SenderName,
		ReceiverName: req.ReceiverName,
		Origin:       req.Origin,
		Destination:  req.Destination,
	}
	if err := h.service.Create(order); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("CreateOrder: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	orders, err := h.service.ListAll(limit, offset)
	if err != nil {
		log.Printf("ListAllOrders: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Printf("DeleteOrder: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// Waybill streams a generated PDF for the order.
func (h *OrderHandler) Waybill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	order, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Printf("Waybill: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}

	data, err := h.waybills.Generate(order)
	if err != nil {
		log.Printf("Waybill: pdf error for order_id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate waybill"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=waybill_order_%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", data)
}
