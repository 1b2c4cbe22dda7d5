package controllers

import (
	"github.com/Naveendeworks/emergent/pkg/resp"
	"github.com/Naveendeworks/emergent/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{service: service}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	menu, err := mc.service.Menu()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menu)
}

// GET /menu/item/:id
func (mc *MenuController) Item(c *gin.Context) {
	item, err := mc.service.Item(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /menu/category/:category
func (mc *MenuController) ByCategory(c *gin.Context) {
	items, err := mc.service.ByCategory(c.Param("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/search/:query
func (mc *MenuController) Search(c *gin.Context) {
	items, err := mc.service.Search(c.Param("query"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}
