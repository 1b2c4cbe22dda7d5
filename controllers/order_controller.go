package controllers

import (
	"fmt"
	"strconv"

	"github.com/Naveendeworks/emergent/pkg/resp"
	"github.com/Naveendeworks/emergent/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// ===== Create / Update =====

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.OrderWriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, order)
}

// PUT /orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	var req services.OrderWriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.service.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/items — merge a quantity delta into the named line item.
func (oc *OrderController) AdjustItem(c *gin.Context) {
	var req struct {
		Name          string `json:"name" binding:"required"`
		QuantityDelta int    `json:"quantityDelta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.service.AdjustItem(c.Param("id"), req.Name, req.QuantityDelta)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// ===== Reads =====

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/myorder/:orderNumber — public customer self-service lookup.
func (oc *OrderController) MyOrder(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("orderNumber"))
	if err != nil {
		resp.BadRequest(c, "order number must be numeric")
		return
	}

	order, err := oc.service.GetByNumber(number)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// ===== Transitions =====

// PATCH /orders/cooking-status
func (oc *OrderController) UpdateCookingStatus(c *gin.Context) {
	var req struct {
		OrderID       string `json:"order_id" binding:"required"`
		ItemName      string `json:"item_name" binding:"required"`
		CookingStatus string `json:"cooking_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	autoCompleted, err := oc.service.UpdateCookingStatus(req.OrderID, req.ItemName, req.CookingStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message":              fmt.Sprintf("Item %q status updated to %q", req.ItemName, req.CookingStatus),
		"order_auto_completed": autoCompleted,
	})
}

// PUT /orders/:id/complete
func (oc *OrderController) Complete(c *gin.Context) {
	order, err := oc.service.Complete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id — cancellation removes the order outright.
func (oc *OrderController) Cancel(c *gin.Context) {
	if err := oc.service.Cancel(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order cancelled"})
}

// ===== Derived views =====

// GET /orders/stats/summary
func (oc *OrderController) Stats(c *gin.Context) {
	stats, err := oc.service.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /orders/view-orders — the kitchen board projection.
func (oc *OrderController) ViewOrders(c *gin.Context) {
	board, err := oc.service.KitchenBoard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, board)
}
