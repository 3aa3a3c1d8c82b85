package model

import "inn/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldAccountID = "account_id"
	FieldFullName  = "full_name"
	FieldPhone     = "phone"
	FieldCnic      = "cnic"
	FieldIsVip     = "is_vip"
)

type Guest struct {
	ID        string  `db:"id"`
	AccountID string  `db:"account_id"`
	FullName  string  `db:"full_name"`
	Phone     string  `db:"phone"`
	Cnic      *string `db:"cnic"`
	IsVip     bool    `db:"is_vip"`
	model.Metadata
}
