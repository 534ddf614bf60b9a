package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusCaptured PaymentStatus = "captured"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Payment struct {
	ID              string        `db:"id" json:"id"`
	OrderID         string        `db:"order_id" json:"order_id"`
	PaymentMethodID *string       `db:"payment_method_id" json:"payment_method_id"`
	Amount          float64       `db:"amount" json:"amount"`
	Status          PaymentStatus `db:"status" json:"status"`
	ProviderRef     string        `db:"provider_ref" json:"provider_ref"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
}

type PaymentMethod struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Brand     string    `db:"brand" json:"brand"`
	Last4     string    `db:"last4" json:"last4"`
	ExpMonth  int       `db:"exp_month" json:"exp_month"`
	ExpYear   int       `db:"exp_year" json:"exp_year"`
	IsDefault bool      `db:"is_default" json:"is_default"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
