package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Naveendeworks/emergent/entity"
	"github.com/Naveendeworks/emergent/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderService owns every validated mutation of an order and its items.
// All multi-step mutations run inside one transaction so the check and the
// write see the same snapshot.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Notif    *NotificationService

	loc *time.Location
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	notif *NotificationService,
	timezone string,
) *OrderService {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logrus.Warnf("unknown timezone %q, falling back to UTC", timezone)
		loc = time.UTC
	}
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Notif: notif, loc: loc}
}

func (s *OrderService) now() time.Time {
	return time.Now().In(s.loc)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type OrderWriteReq struct {
	CustomerName  string        `json:"customerName" binding:"required"`
	PhoneNumber   string        `json:"phoneNumber"`
	PaymentMethod string        `json:"paymentMethod"`
	Items         []OrderItemIn `json:"items" binding:"required,min=1"`
}

type OrderStats struct {
	Pending             int64    `json:"pending"`
	Completed           int64    `json:"completed"`
	Total               int64    `json:"total"`
	AverageDeliveryTime *float64 `json:"averageDeliveryTime"`
}

// validate applies the field rules shared by create and update.
func (s *OrderService) validate(req *OrderWriteReq) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return ErrCustomerNameRequired
	}
	if len(req.Items) == 0 {
		return ErrNoItems
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return ErrBadQuantity
		}
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(req.PaymentMethod) {
		return ErrBadPaymentMethod
	}
	return nil
}

// buildItems merges duplicate names (exact match), prices every line from
// the menu catalog and returns the line rows in first-seen order.
func (s *OrderService) buildItems(in []OrderItemIn) ([]entity.OrderItem, error) {
	merged := make([]entity.OrderItem, 0, len(in))
	index := make(map[string]int, len(in))

	for _, it := range in {
		if i, ok := index[it.Name]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.Name] = len(merged)
		merged = append(merged, entity.OrderItem{
			Name:          it.Name,
			Quantity:      it.Quantity,
			CookingStatus: entity.CookingNotStarted,
		})
	}

	for i := range merged {
		menuItem, err := s.MenuRepo.GetByName(merged[i].Name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, menuItemError(merged[i].Name)
			}
			return nil, err
		}
		merged[i].UnitPrice = menuItem.Price
		merged[i].Subtotal = round2(menuItem.Price * float64(merged[i].Quantity))
	}
	return merged, nil
}

func totals(items []entity.OrderItem) (int, float64) {
	count := 0
	amount := 0.0
	for _, it := range items {
		count += it.Quantity
		amount += it.Subtotal
	}
	return count, round2(amount)
}

// ----- Create -----

func (s *OrderService) Create(req *OrderWriteReq) (*entity.Order, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	items, err := s.buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	current := s.now()
	estimated := current.Add(30 * time.Minute)
	totalItems, totalAmount := totals(items)

	var out *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		number, err := s.Repo.NextOrderNumber(tx)
		if err != nil {
			return err
		}
		order := entity.Order{
			OrderNumber:           number,
			CustomerName:          strings.TrimSpace(req.CustomerName),
			PhoneNumber:           strings.TrimSpace(req.PhoneNumber),
			PaymentMethod:         req.PaymentMethod,
			Status:                entity.OrderStatusPending,
			OrderTime:             current,
			EstimatedDeliveryTime: &estimated,
			TotalItems:            totalItems,
			TotalAmount:           totalAmount,
			Items:                 items,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ----- Reads -----

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.ListOrders(s.DB)
}

func (s *OrderService) GetByID(orderID string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(s.DB, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// GetByNumber is the public self-service lookup: customers track their
// order by its display number, never by phone.
func (s *OrderService) GetByNumber(orderNumber int) (*entity.Order, error) {
	o, err := s.Repo.GetOrderByNumber(s.DB, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// ----- Update (full replace, pending orders only) -----

func (s *OrderService) Update(orderID string, req *OrderWriteReq) (*entity.Order, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	items, err := s.buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	totalItems, totalAmount := totals(items)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.Status == entity.OrderStatusCompleted {
			return ErrOrderCompleted
		}

		if err := s.Repo.DeleteItemsForOrder(tx, order.ID); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &items[i]); err != nil {
				return err
			}
		}
		return s.Repo.UpdateOrderFields(tx, order.ID, map[string]any{
			"customer_name":  strings.TrimSpace(req.CustomerName),
			"phone_number":   strings.TrimSpace(req.PhoneNumber),
			"payment_method": req.PaymentMethod,
			"total_items":    totalItems,
			"total_amount":   totalAmount,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(orderID)
}

// ----- Line item adjustment (merge by name) -----

// AdjustItem applies a quantity delta to the named item: existing items
// merge, a result of zero or less removes the line, and a new name inserts
// a priced line. The last remaining item cannot be removed; cancel the
// order instead.
func (s *OrderService) AdjustItem(orderID, itemName string, delta int) (*entity.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.Status == entity.OrderStatusCompleted {
			return ErrOrderCompleted
		}

		var line *entity.OrderItem
		for i := range order.Items {
			if order.Items[i].Name == itemName {
				line = &order.Items[i]
				break
			}
		}

		switch {
		case line == nil:
			if delta < 1 {
				return ErrBadQuantity
			}
			built, err := s.buildItems([]OrderItemIn{{Name: itemName, Quantity: delta}})
			if err != nil {
				return err
			}
			built[0].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &built[0]); err != nil {
				return err
			}
			order.Items = append(order.Items, built[0])

		case line.Quantity+delta <= 0:
			if len(order.Items) == 1 {
				return ErrLastItem
			}
			if err := s.Repo.DeleteOrderItem(tx, line.ID); err != nil {
				return err
			}
			kept := order.Items[:0]
			for _, it := range order.Items {
				if it.Name != itemName {
					kept = append(kept, it)
				}
			}
			order.Items = kept

		default:
			line.Quantity += delta
			line.Subtotal = round2(line.UnitPrice * float64(line.Quantity))
			if err := s.Repo.SaveOrderItem(tx, line); err != nil {
				return err
			}
		}

		totalItems, totalAmount := totals(order.Items)
		return s.Repo.UpdateOrderFields(tx, order.ID, map[string]any{
			"total_items":  totalItems,
			"total_amount": totalAmount,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(orderID)
}

// ----- Cooking status -----

// UpdateCookingStatus sets one item's preparation state. When the change
// leaves every item finished on a still-pending order, the same
// transaction completes the order; the returned flag tells the dashboard
// to announce it. Re-applying an identical status is a no-op and never
// re-completes.
func (s *OrderService) UpdateCookingStatus(orderID, itemName, status string) (bool, error) {
	if !entity.ValidCookingStatus(status) {
		return false, ErrBadCookingStatus
	}

	autoCompleted := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		var line *entity.OrderItem
		for i := range order.Items {
			if order.Items[i].Name == itemName {
				line = &order.Items[i]
				break
			}
		}
		if line == nil {
			return ErrItemNotFound
		}

		if line.CookingStatus != status {
			line.CookingStatus = status
			if err := s.Repo.SaveOrderItem(tx, line); err != nil {
				return err
			}
		}

		allFinished := true
		for _, it := range order.Items {
			if it.CookingStatus != entity.CookingFinished {
				allFinished = false
				break
			}
		}
		if allFinished && order.Status == entity.OrderStatusPending {
			ok, err := s.Repo.CompleteGuard(tx, order.ID, s.now())
			if err != nil {
				return err
			}
			autoCompleted = ok
		}
		return nil
	})
	return autoCompleted, err
}

// ----- Explicit completion -----

func (s *OrderService) Complete(orderID string) (*entity.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.CompleteGuard(tx, orderID, s.now())
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if _, err := s.Repo.GetOrder(tx, orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		return ErrOrderCompleted
	})
	if err != nil {
		return nil, err
	}

	order, err := s.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	// A failed notification never fails the completion.
	if s.Notif != nil {
		if nerr := s.Notif.NotifyOrderReady(order); nerr != nil {
			logrus.WithField("orderId", orderID).Errorf("order ready notification failed: %v", nerr)
		}
	}
	return order, nil
}

// ----- Cancellation -----

// Cancel deletes a pending order outright. Tickets already on the stove
// (any item in process) and completed orders are refused.
func (s *OrderService) Cancel(orderID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.Status == entity.OrderStatusCompleted {
			return ErrOrderCompleted
		}
		for _, it := range order.Items {
			if it.CookingStatus == entity.CookingInProcess {
				return ErrItemInProcess
			}
		}

		ok, err := s.Repo.DeletePendingGuard(tx, order.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderCompleted
		}
		return s.Repo.DeleteItemsForOrder(tx, order.ID)
	})
}

// ----- Stats -----

// Stats summarizes today's orders in the restaurant timezone. The average
// is nil, not zero, when nothing has completed yet.
func (s *OrderService) Stats() (*OrderStats, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	tomorrow := today.AddDate(0, 0, 1)

	pending, err := s.Repo.CountByStatusBetween(s.DB, entity.OrderStatusPending, today, tomorrow)
	if err != nil {
		return nil, err
	}
	completed, err := s.Repo.CountByStatusBetween(s.DB, entity.OrderStatusCompleted, today, tomorrow)
	if err != nil {
		return nil, err
	}
	avg, err := s.Repo.AvgDeliveryMinutesBetween(s.DB, today, tomorrow)
	if err != nil {
		return nil, err
	}

	return &OrderStats{
		Pending:             pending,
		Completed:           completed,
		Total:               pending + completed,
		AverageDeliveryTime: avg,
	}, nil
}
