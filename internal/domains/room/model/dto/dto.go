package dto

import (
	"mime/multipart"

	"inn/internal/domains/room/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	Title     string  `json:"title"      validate:"required,max=100"`
	BasePrice float64 `json:"base_price" validate:"required,gte=0"`
}

func (c *CreateRoomTypeRequest) ToModel(accountID, user string) model.RoomType {
	return model.RoomType{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Title:     c.Title,
		BasePrice: c.BasePrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Title     string   `db:"title"      json:"title"      validate:"omitempty,max=100"`
	BasePrice *float64 `db:"base_price" json:"base_price" validate:"omitempty,gte=0"`
}

type RoomTypeResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	BasePrice float64 `json:"base_price"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Title = model.Title
	r.BasePrice = model.BasePrice
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}

type CreateRoomRequest struct {
	RoomTypeID string                `json:"room_type_id" validate:"required"`
	RoomNumber string                `json:"room_number"  validate:"required,max=20"`
	Image      *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
	Active     *bool                 `json:"active"       validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(accountID, user, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		RoomTypeID: c.RoomTypeID,
		RoomNumber: c.RoomNumber,
		Image:      imageURL,
		Active:     active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomTypeID string                `db:"room_type_id" json:"room_type_id" validate:"omitempty"`
	RoomNumber string                `db:"room_number"  json:"room_number"  validate:"omitempty,max=20"`
	Image      *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
	Active     *bool                 `db:"active"       json:"active"       validate:"omitempty"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	RoomTypeID    string  `json:"room_type_id"`
	RoomNumber    string  `json:"room_number"`
	Image         string  `json:"image"`
	Active        bool    `json:"active"`
	TypeTitle     string  `json:"type_title"`
	TypeBasePrice float64 `json:"type_base_price"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.RoomDetail) {
	r.ID = model.ID
	r.RoomTypeID = model.RoomTypeID
	r.RoomNumber = model.RoomNumber
	r.Image = model.Image
	r.Active = model.Active
	r.TypeTitle = model.TypeTitle
	r.TypeBasePrice = model.TypeBasePrice
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.RoomDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
