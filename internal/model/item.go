package model

type Item struct {
	BaseModel
	CompanyID      string  `db:"company_id" json:"company_id"`
	CategoryNodeID *string `db:"category_node_id" json:"category_node_id"`
	ProductNodeID  *string `db:"product_node_id" json:"product_node_id"`
	NameEn         string  `db:"name_en" json:"name_en"`
	NameFr         string  `db:"name_fr" json:"name_fr"`
	DescriptionEn  string  `db:"description_en" json:"description_en"`
	DescriptionFr  string  `db:"description_fr" json:"description_fr"`
	IsDeleted      bool    `db:"is_deleted" json:"is_deleted"`
}

type ItemVariant struct {
	BaseModel
	ItemID        string  `db:"item_id" json:"item_id"`
	SKU           string  `db:"sku" json:"sku"`
	Price         float64 `db:"price" json:"price"`
	StockQuantity int     `db:"stock_quantity" json:"stock_quantity"`
	IsDeleted     bool    `db:"is_deleted" json:"is_deleted"`
}
