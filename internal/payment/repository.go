package payment

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	CreatePayment(ctx context.Context, p *model.Payment) error
	FindPaymentsByOrder(ctx context.Context, orderID string) ([]model.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, providerRef string) error

	CreateMethod(ctx context.Context, m *model.PaymentMethod) error
	FindMethodsByUser(ctx context.Context, userID string) ([]model.PaymentMethod, error)
	// SetDefaultMethod makes methodID the user's only default method.
	SetDefaultMethod(ctx context.Context, userID, methodID string) error
	DeleteMethod(ctx context.Context, id string) error
}
