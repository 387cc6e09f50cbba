package services

import (
	"errors"

	"saferide/internal/models"
	"saferide/internal/repositories"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	repo     repositories.OrderRepository
	userRepo repositories.UserRepository
	dispatch *DispatchService
}

func NewOrderService(repo repositories.OrderRepository, userRepo repositories.UserRepository, dispatch *DispatchService) *OrderService {
	return &OrderService{repo: repo, userRepo: userRepo, dispatch: dispatch}
}

func (s *OrderService) Create(order *models.Order) error {
	for _, id := range []int{order.SenderID, order.ReceiverID} {
		ok, err := s.userRepo.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUserNotFound
		}
	}
	order.IsComplete = false
	if err := s.repo.Create(order); err != nil {
		return err
	}
	s.dispatch.NotifyNewOrder(order)
	return nil
}

func (s *OrderService) GetByID(id int) (*models.Order, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListAll(limit, offset int) ([]*models.Order, error) {
	return s.repo.ListAll(limit, offset)
}

func (s *OrderService) Delete(id int) error {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return s.repo.Delete(id)
}
