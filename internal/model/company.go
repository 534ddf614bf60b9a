package model

type Company struct {
	BaseModel
	OwnerUserID string   `db:"owner_user_id" json:"owner_user_id"`
	Name        string   `db:"name" json:"name"`
	Description string   `db:"description" json:"description"`
	AddressID   *string  `db:"address_id" json:"address_id"`
	Address     *Address `db:"-" json:"address"`
}

type Address struct {
	ID         string `db:"id" json:"id"`
	Line1      string `db:"line1" json:"line1"`
	Line2      string `db:"line2" json:"line2"`
	City       string `db:"city" json:"city"`
	Province   string `db:"province" json:"province"`
	PostalCode string `db:"postal_code" json:"postal_code"`
	Country    string `db:"country" json:"country"`
}
