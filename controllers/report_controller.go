package controllers

import (
	"github.com/Naveendeworks/emergent/pkg/resp"
	"github.com/Naveendeworks/emergent/services"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// GET /reports/payment
func (rc *ReportController) PaymentReports(c *gin.Context) {
	reports, err := rc.service.PaymentReports()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reports)
}

// GET /reports/items
func (rc *ReportController) ItemReports(c *gin.Context) {
	reports, err := rc.service.ItemReports()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reports)
}
