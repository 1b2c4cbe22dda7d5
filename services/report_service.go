package services

import (
	"sort"

	"github.com/Naveendeworks/emergent/entity"
	"github.com/Naveendeworks/emergent/repository"
	"gorm.io/gorm"
)

// ReportService derives the sales views from the order history. Pure reads,
// computed per request.
type ReportService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewReportService(db *gorm.DB, repo *repository.OrderRepository) *ReportService {
	return &ReportService{DB: db, Repo: repo}
}

type PaymentReport struct {
	PaymentMethod       string   `json:"paymentMethod"`
	OrderCount          int      `json:"orderCount"`
	TotalItems          int      `json:"totalItems"`
	PendingOrders       int      `json:"pendingOrders"`
	CompletedOrders     int      `json:"completedOrders"`
	AverageDeliveryTime *float64 `json:"averageDeliveryTime"`
}

type ItemReport struct {
	ItemName                string   `json:"itemName"`
	TotalOrdered            int      `json:"totalOrdered"`
	OrderCount              int      `json:"orderCount"`
	AverageQuantityPerOrder float64  `json:"averageQuantityPerOrder"`
	PopularPaymentMethod    string   `json:"popularPaymentMethod"`
	RecentOrders            []string `json:"recentOrders"`
}

// PaymentReports aggregates the full order history per payment method,
// with the mean fulfillment minutes of that method's completed orders.
func (s *ReportService) PaymentReports() ([]PaymentReport, error) {
	orders, err := s.Repo.ListOrders(s.DB)
	if err != nil {
		return nil, err
	}

	byMethod := make(map[string]*PaymentReport)
	deliveryMinutes := make(map[string][]float64)

	for _, o := range orders {
		method := o.PaymentMethod
		if method == "" {
			method = entity.PaymentCash
		}
		rep, ok := byMethod[method]
		if !ok {
			rep = &PaymentReport{PaymentMethod: method}
			byMethod[method] = rep
		}

		rep.OrderCount++
		rep.TotalItems += o.TotalItems
		switch o.Status {
		case entity.OrderStatusPending:
			rep.PendingOrders++
		case entity.OrderStatusCompleted:
			rep.CompletedOrders++
			if o.CompletedTime != nil {
				minutes := o.CompletedTime.Sub(o.OrderTime).Minutes()
				deliveryMinutes[method] = append(deliveryMinutes[method], minutes)
			}
		}
	}

	out := make([]PaymentReport, 0, len(byMethod))
	for method, rep := range byMethod {
		if times := deliveryMinutes[method]; len(times) > 0 {
			sum := 0.0
			for _, m := range times {
				sum += m
			}
			avg := sum / float64(len(times))
			rep.AverageDeliveryTime = &avg
		}
		out = append(out, *rep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentMethod < out[j].PaymentMethod })
	return out, nil
}

// ItemReports ranks menu items by units sold across the whole history.
func (s *ReportService) ItemReports() ([]ItemReport, error) {
	orders, err := s.Repo.ListOrders(s.DB)
	if err != nil {
		return nil, err
	}

	type itemStats struct {
		totalOrdered   int
		orderCount     int
		customers      []string
		paymentMethods []string
	}
	stats := make(map[string]*itemStats)
	names := make([]string, 0)

	for _, o := range orders {
		for _, item := range o.Items {
			st, ok := stats[item.Name]
			if !ok {
				st = &itemStats{}
				stats[item.Name] = st
				names = append(names, item.Name)
			}
			st.totalOrdered += item.Quantity
			st.orderCount++
			st.customers = append(st.customers, o.CustomerName)
			st.paymentMethods = append(st.paymentMethods, o.PaymentMethod)
		}
	}

	out := make([]ItemReport, 0, len(stats))
	for _, name := range names {
		st := stats[name]
		out = append(out, ItemReport{
			ItemName:                name,
			TotalOrdered:            st.totalOrdered,
			OrderCount:              st.orderCount,
			AverageQuantityPerOrder: float64(st.totalOrdered) / float64(st.orderCount),
			PopularPaymentMethod:    mostCommon(st.paymentMethods),
			RecentOrders:            lastUnique(st.customers, 5),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalOrdered != out[j].TotalOrdered {
			return out[i].TotalOrdered > out[j].TotalOrdered
		}
		return out[i].ItemName < out[j].ItemName
	})
	return out, nil
}

func mostCommon(values []string) string {
	counts := make(map[string]int)
	best, bestCount := entity.PaymentCash, 0
	for _, v := range values {
		if v == "" {
			v = entity.PaymentCash
		}
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// lastUnique keeps the most recent n distinct entries in first-seen order
// from the tail.
func lastUnique(values []string, n int) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, n)
	for i := len(values) - 1; i >= 0 && len(out) < n; i-- {
		if seen[values[i]] {
			continue
		}
		seen[values[i]] = true
		out = append(out, values[i])
	}
	return out
}
