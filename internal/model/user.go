package model

type User struct {
	BaseModel
	Email        string  `db:"email" json:"email"`
	PasswordHash string  `db:"password_hash" json:"-"`
	FirstName    string  `db:"first_name" json:"first_name"`
	LastName     string  `db:"last_name" json:"last_name"`
	Role         string  `db:"role" json:"role"`
	CompanyID    *string `db:"company_id" json:"company_id"`
}
