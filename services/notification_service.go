package services

import (
	"fmt"
	"time"

	"github.com/Naveendeworks/emergent/entity"
	"github.com/Naveendeworks/emergent/repository"
	"github.com/sirupsen/logrus"
)

// NotificationService feeds the pickup display: one announcement per
// completed order, dismissed by staff once the customer picks up.
type NotificationService struct {
	Repo *repository.NotificationRepository

	loc *time.Location
}

func NewNotificationService(repo *repository.NotificationRepository, timezone string) *NotificationService {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logrus.Warnf("unknown timezone %q, falling back to UTC", timezone)
		loc = time.UTC
	}
	return &NotificationService{Repo: repo, loc: loc}
}

func (s *NotificationService) NotifyOrderReady(order *entity.Order) error {
	n := entity.Notification{
		CustomerName: order.CustomerName,
		Message:      fmt.Sprintf("Order #%d for %s is ready for pickup", order.OrderNumber, order.CustomerName),
		OrderID:      order.ID,
		IsActive:     true,
		CreatedAt:    time.Now().In(s.loc),
	}
	return s.Repo.Create(s.Repo.DB, &n)
}

func (s *NotificationService) Active() ([]entity.Notification, error) {
	return s.Repo.ListActive()
}

func (s *NotificationService) List(limit int) ([]entity.Notification, error) {
	return s.Repo.List(limit)
}

func (s *NotificationService) MarkRead(id string) error {
	ok, err := s.Repo.MarkRead(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) Dismiss(id string) error {
	ok, err := s.Repo.Dismiss(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}
