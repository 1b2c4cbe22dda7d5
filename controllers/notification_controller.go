package controllers

import (
	"strconv"

	"github.com/Naveendeworks/emergent/pkg/resp"
	"github.com/Naveendeworks/emergent/services"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	service *services.NotificationService
}

func NewNotificationController(service *services.NotificationService) *NotificationController {
	return &NotificationController{service: service}
}

// GET /notifications/active — public, feeds the pickup display.
func (nc *NotificationController) Active(c *gin.Context) {
	notifications, err := nc.service.Active()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, notifications)
}

// GET /notifications?limit=
func (nc *NotificationController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	notifications, err := nc.service.List(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, notifications)
}

// PATCH /notifications/:id/read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	if err := nc.service.MarkRead(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Notification marked as read"})
}

// PATCH /notifications/:id/dismiss
func (nc *NotificationController) Dismiss(c *gin.Context) {
	if err := nc.service.Dismiss(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Notification dismissed"})
}
