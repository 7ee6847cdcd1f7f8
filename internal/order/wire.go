package order

import (
	"database/sql"

	"go.uber.org/zap"

	"ordersvc/internal/config"
	"ordersvc/internal/order/client"
	"ordersvc/internal/order/controller"
	"ordersvc/internal/order/repository"
	"ordersvc/internal/order/service"
	"ordersvc/internal/order/usecase"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.OrderController {
	orderRepo := repository.NewMySQLOrderRepository(db)
	userClient := client.NewUserClient(cfg.Services.UserServiceURL, cfg.Services.FetchTimeout)
	productClient := client.NewProductClient(cfg.Services.ProductServiceURL, cfg.Services.FetchTimeout)
	assembler := service.NewResponseAssembler()

	enrichUC := usecase.NewEnrichOrderUseCase(orderRepo, userClient, productClient, assembler, logger)
	listUC := usecase.NewListOrdersUseCase(orderRepo, logger)

	return controller.NewOrderController(enrichUC, listUC, logger)
}
