package model

import "inn/shared/model"

const (
	TableName  = "halls"
	EntityName = "hall"

	FieldID         = "id"
	FieldAccountID  = "account_id"
	FieldHallTypeID = "hall_type_id"
	FieldHallNumber = "hall_number"
	FieldImage      = "image"
	FieldActive     = "active"
)

const (
	TypeTableName  = "hall_types"
	TypeEntityName = "hall_type"

	TypeFieldID        = "id"
	TypeFieldTitle     = "title"
	TypeFieldBestPrice = "best_price"
)

type HallType struct {
	ID        string  `db:"id"`
	AccountID string  `db:"account_id"`
	Title     string  `db:"title"`
	BestPrice float64 `db:"best_price"`
	model.Metadata
}

type Hall struct {
	ID         string `db:"id"`
	AccountID  string `db:"account_id"`
	HallTypeID string `db:"hall_type_id"`
	HallNumber string `db:"hall_number"`
	Image      string `db:"image"`
	Active     bool   `db:"active"`
	model.Metadata
}

// HallDetail is the read model for listings, joined with the hall's type.
type HallDetail struct {
	Hall
	TypeTitle     string  `db:"type_title"      table:"hall_types" column:"title"`
	TypeBestPrice float64 `db:"type_best_price" table:"hall_types" column:"best_price"`
}

func (HallDetail) GetJoinQuery() string {
	return "JOIN hall_types ON hall_types.id = halls.hall_type_id"
}
