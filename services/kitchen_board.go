package services

import (
	"time"

	"github.com/Naveendeworks/emergent/entity"
)

// Kitchen board projection: pending line items regrouped by menu category
// and item for the kitchen display. Recomputed per request, never stored.

type KitchenOrderRef struct {
	OrderID       string    `json:"order_id"`
	OrderNumber   int       `json:"orderNumber"`
	CustomerName  string    `json:"customerName"`
	Quantity      int       `json:"quantity"`
	CookingStatus string    `json:"cooking_status"`
	OrderTime     time.Time `json:"orderTime"`
	Price         float64   `json:"price"`
	Subtotal      float64   `json:"subtotal"`
}

type KitchenItemGroup struct {
	ItemName      string            `json:"item_name"`
	TotalQuantity int               `json:"total_quantity"`
	Orders        []KitchenOrderRef `json:"orders"`
}

type KitchenCategoryGroup struct {
	CategoryName string             `json:"category_name"`
	Items        []KitchenItemGroup `json:"items"`
	TotalItems   int                `json:"total_items"`
}

// KitchenBoard groups every pending line item by category then item name.
// Categories and items keep first-seen order over orders sorted newest
// first, so the output is deterministic for a given order set.
func (s *OrderService) KitchenBoard() ([]KitchenCategoryGroup, error) {
	orders, err := s.Repo.ListOrdersByStatus(s.DB, entity.OrderStatusPending)
	if err != nil {
		return nil, err
	}

	menuItems, err := s.MenuRepo.ListAvailable()
	if err != nil {
		return nil, err
	}
	categoryOf := make(map[string]string, len(menuItems))
	for _, mi := range menuItems {
		categoryOf[mi.Name] = mi.Category
	}

	groups := make([]KitchenCategoryGroup, 0)
	categoryIdx := make(map[string]int)
	itemIdx := make(map[string]map[string]int)

	for _, order := range orders {
		for _, item := range order.Items {
			category, ok := categoryOf[item.Name]
			if !ok {
				category = "Other"
			}

			ci, ok := categoryIdx[category]
			if !ok {
				ci = len(groups)
				categoryIdx[category] = ci
				itemIdx[category] = make(map[string]int)
				groups = append(groups, KitchenCategoryGroup{CategoryName: category})
			}

			ii, ok := itemIdx[category][item.Name]
			if !ok {
				ii = len(groups[ci].Items)
				itemIdx[category][item.Name] = ii
				groups[ci].Items = append(groups[ci].Items, KitchenItemGroup{ItemName: item.Name})
			}

			g := &groups[ci].Items[ii]
			g.TotalQuantity += item.Quantity
			g.Orders = append(g.Orders, KitchenOrderRef{
				OrderID:       order.ID,
				OrderNumber:   order.OrderNumber,
				CustomerName:  order.CustomerName,
				Quantity:      item.Quantity,
				CookingStatus: item.CookingStatus,
				OrderTime:     order.OrderTime,
				Price:         item.UnitPrice,
				Subtotal:      item.Subtotal,
			})
		}
	}

	for i := range groups {
		groups[i].TotalItems = len(groups[i].Items)
	}
	return groups, nil
}
