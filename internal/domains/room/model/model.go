package model

import "inn/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldAccountID  = "account_id"
	FieldRoomTypeID = "room_type_id"
	FieldRoomNumber = "room_number"
	FieldImage      = "image"
	FieldActive     = "active"
)

const (
	TypeTableName  = "room_types"
	TypeEntityName = "room_type"

	TypeFieldID        = "id"
	TypeFieldTitle     = "title"
	TypeFieldBasePrice = "base_price"
)

type RoomType struct {
	ID        string  `db:"id"`
	AccountID string  `db:"account_id"`
	Title     string  `db:"title"`
	BasePrice float64 `db:"base_price"`
	model.Metadata
}

type Room struct {
	ID         string `db:"id"`
	AccountID  string `db:"account_id"`
	RoomTypeID string `db:"room_type_id"`
	RoomNumber string `db:"room_number"`
	Image      string `db:"image"`
	Active     bool   `db:"active"`
	model.Metadata
}

// RoomDetail is the read model for listings, joined with the room's type.
type RoomDetail struct {
	Room
	TypeTitle     string  `db:"type_title"     table:"room_types" column:"title"`
	TypeBasePrice float64 `db:"type_base_price" table:"room_types" column:"base_price"`
}

func (RoomDetail) GetJoinQuery() string {
	return "JOIN room_types ON room_types.id = rooms.room_type_id"
}
