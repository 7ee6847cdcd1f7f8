package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"ordersvc/internal/domain"
	apperrors "ordersvc/internal/errors"
)

type mockOrderListRepository struct {
	FindAllFunc func(ctx context.Context) ([]domain.Order, error)
}

func (m *mockOrderListRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return m.FindAllFunc(ctx)
}

func TestList_ReturnsOrders(t *testing.T) {
	repo := &mockOrderListRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Order, error) {
			return []domain.Order{{ID: 1}, {ID: 2}}, nil
		},
	}

	uc := NewListOrdersUseCase(repo, zap.NewNop())

	orders, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("expected 2 orders, got %d", len(orders))
	}
}

func TestList_EmptyStoreReturnsEmptySlice(t *testing.T) {
	repo := &mockOrderListRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Order, error) {
			return nil, nil
		},
	}

	uc := NewListOrdersUseCase(repo, zap.NewNop())

	orders, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(orders) != 0 {
		t.Errorf("expected 0 orders, got %d", len(orders))
	}
}

func TestList_StoreFault_IsInternalError(t *testing.T) {
	repo := &mockOrderListRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Order, error) {
			return nil, errors.New("driver: bad connection")
		},
	}

	uc := NewListOrdersUseCase(repo, zap.NewNop())

	_, err := uc.List(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsInternalError(err); !ok {
		t.Errorf("expected InternalError, got %T", err)
	}
}
