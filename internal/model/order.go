package model

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	BaseModel
	UserID            string      `db:"user_id" json:"user_id"`
	CompanyID         string      `db:"company_id" json:"company_id"`
	Status            OrderStatus `db:"status" json:"status"`
	Subtotal          float64     `db:"subtotal" json:"subtotal"`
	TaxTotal          float64     `db:"tax_total" json:"tax_total"`
	Total             float64     `db:"total" json:"total"`
	ShippingAddressID *string     `db:"shipping_address_id" json:"shipping_address_id"`
	Items             []OrderItem `db:"-" json:"items"`
}

type OrderItem struct {
	ID            string  `db:"id" json:"id"`
	OrderID       string  `db:"order_id" json:"order_id"`
	ItemVariantID string  `db:"item_variant_id" json:"item_variant_id"`
	Quantity      int     `db:"quantity" json:"quantity"`
	UnitPrice     float64 `db:"unit_price" json:"unit_price"`
}
