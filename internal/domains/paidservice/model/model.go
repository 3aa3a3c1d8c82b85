package model

import "inn/shared/model"

const (
	TableName  = "paid_services"
	EntityName = "paid_service"

	FieldID        = "id"
	FieldAccountID = "account_id"
	FieldTitle     = "title"
	FieldPrice     = "price"
	FieldActive    = "active"
)

type PaidService struct {
	ID        string  `db:"id"`
	AccountID string  `db:"account_id"`
	Title     string  `db:"title"`
	Price     float64 `db:"price"`
	Active    bool    `db:"active"`
	model.Metadata
}
