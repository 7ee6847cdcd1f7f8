package usecase

import (
	"context"

	"go.uber.org/zap"

	"ordersvc/internal/domain"
	apperrors "ordersvc/internal/errors"
)

type OrderListRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type ListOrdersUseCase struct {
	orderRepo OrderListRepository
	logger    *zap.Logger
}

func NewListOrdersUseCase(orderRepo OrderListRepository, logger *zap.Logger) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListOrdersUseCase) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("listing orders", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}
