package order

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	// CreateWithItems writes the order and its lines in one transaction.
	CreateWithItems(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
	FindByUser(ctx context.Context, userID string) ([]model.Order, error)
	FindByCompany(ctx context.Context, companyID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
}
