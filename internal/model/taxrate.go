package model

type TaxRate struct {
	BaseModel
	RegionCode string  `db:"region_code" json:"region_code"`
	Rate       float64 `db:"rate" json:"rate"` // 0.13 for 13%
}
