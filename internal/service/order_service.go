package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/google/uuid"
)

// Actor пользователь, от имени которого выполняется операция.
type Actor struct {
	UserID int64
	Admin  bool
}

// CanAccess владелец заказа или администратор.
func (a Actor) CanAccess(order *domain.Order) bool {
	return a.Admin || order.UserID == a.UserID
}

type OrderService struct {
	orderRepo OrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &OrderService{orderRepo: orderRepo}, nil
}

// Get возвращает заказ с позициями. Чужой заказ доступен только администратору.
func (o *OrderService) Get(ctx context.Context, orderID uuid.UUID, actor Actor) (*domain.Order, error) {
	order, err := o.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("getting order %s: %w", orderID, err)
	}
	if !actor.CanAccess(order) {
		return nil, fmt.Errorf("getting order %s: %w", orderID, domain.ErrForbidden)
	}
	return order, nil
}

// ListByUser возвращает заказы пользователя, новые первыми.
func (o *OrderService) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}
