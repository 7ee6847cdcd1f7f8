package usecase

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"ordersvc/internal/domain"
	"ordersvc/internal/dto"
	apperrors "ordersvc/internal/errors"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
}

type UserDetailFetcher interface {
	FetchUser(ctx context.Context, userID int) (json.RawMessage, error)
}

type ProductDetailFetcher interface {
	FetchProduct(ctx context.Context, productID int) (json.RawMessage, error)
}

type Assembler interface {
	Assemble(order *domain.Order, userOutcome dto.FetchOutcome, itemOutcomes []dto.FetchOutcome) *domain.EnrichedOrder
}

// EnrichOrderUseCase looks up an order, fans out concurrently to the user and
// product services, and assembles the enriched view. A dependency failure
// degrades the matching field to null; only a store fault fails the call.
type EnrichOrderUseCase struct {
	orderRepo      OrderRepository
	userFetcher    UserDetailFetcher
	productFetcher ProductDetailFetcher
	assembler      Assembler
	logger         *zap.Logger
}

func NewEnrichOrderUseCase(
	orderRepo OrderRepository,
	userFetcher UserDetailFetcher,
	productFetcher ProductDetailFetcher,
	assembler Assembler,
	logger *zap.Logger,
) *EnrichOrderUseCase {
	return &EnrichOrderUseCase{
		orderRepo:      orderRepo,
		userFetcher:    userFetcher,
		productFetcher: productFetcher,
		assembler:      assembler,
		logger:         logger,
	}
}

func (uc *EnrichOrderUseCase) Enrich(ctx context.Context, orderID uint) (*domain.EnrichedOrder, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, err
		}
		return nil, apperrors.NewInternalError("looking up order", err)
	}

	// One branch for the user, one per item, all concurrent. Branch 0 is
	// always the user fetch; branch i+1 belongs to order.Items[i].
	branches := make([]branchFunc, 0, len(order.Items)+1)
	branches = append(branches, func(ctx context.Context) dto.FetchOutcome {
		return uc.settle(func() (json.RawMessage, error) {
			return uc.userFetcher.FetchUser(ctx, order.UserID)
		}, zap.Uint("orderId", order.ID), zap.Int("userId", order.UserID))
	})
	for _, item := range order.Items {
		productID := item.ProductID
		branches = append(branches, func(ctx context.Context) dto.FetchOutcome {
			return uc.settle(func() (json.RawMessage, error) {
				return uc.productFetcher.FetchProduct(ctx, productID)
			}, zap.Uint("orderId", order.ID), zap.Int("productId", productID))
		})
	}

	outcomes := joinAll(ctx, branches)

	return uc.assembler.Assemble(order, outcomes[0], outcomes[1:]), nil
}

// settle runs one fetch and converts its result into a tagged outcome. An
// error never escapes here, it only degrades the branch.
func (uc *EnrichOrderUseCase) settle(fetch func() (json.RawMessage, error), fields ...zap.Field) dto.FetchOutcome {
	details, err := fetch()
	if err == nil {
		return dto.Found(details)
	}

	if _, ok := apperrors.IsUpstreamNotFoundError(err); ok {
		uc.logger.Warn("entity missing upstream", append(fields, zap.Error(err))...)
		return dto.UpstreamNotFound()
	}

	uc.logger.Warn("dependency fetch failed", append(fields, zap.Error(err))...)
	return dto.UpstreamUnavailable()
}
