package dto

import (
	"mime/multipart"

	"inn/internal/domains/hall/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateHallTypeRequest struct {
	Title     string  `json:"title"      validate:"required,max=100"`
	BestPrice float64 `json:"best_price" validate:"required,gte=0"`
}

func (c *CreateHallTypeRequest) ToModel(accountID, user string) model.HallType {
	return model.HallType{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Title:     c.Title,
		BestPrice: c.BestPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHallTypeRequest struct {
	Title     string   `db:"title"      json:"title"      validate:"omitempty,max=100"`
	BestPrice *float64 `db:"best_price" json:"best_price" validate:"omitempty,gte=0"`
}

type HallTypeResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	BestPrice float64 `json:"best_price"`
	gDto.Metadata
}

func (r *HallTypeResponse) FromModel(model model.HallType) {
	r.ID = model.ID
	r.Title = model.Title
	r.BestPrice = model.BestPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetHallTypesResponse struct {
	HallTypes []HallTypeResponse `json:"hall_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetHallTypesResponse) FromModels(models []model.HallType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.HallTypes = make([]HallTypeResponse, len(models))
	for i, mod := range models {
		r.HallTypes[i].FromModel(mod)
	}
}

type CreateHallRequest struct {
	HallTypeID string                `json:"hall_type_id" validate:"required"`
	HallNumber string                `json:"hall_number"  validate:"required,max=20"`
	Image      *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
	Active     *bool                 `json:"active"       validate:"omitempty"`
}

func (c *CreateHallRequest) ToModel(accountID, user, imageURL string) model.Hall {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Hall{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		HallTypeID: c.HallTypeID,
		HallNumber: c.HallNumber,
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

type UpdateHallRequest struct {
	HallTypeID string                `db:"hall_type_id" json:"hall_type_id" validate:"omitempty"`
	HallNumber string                `db:"hall_number"  json:"hall_number"  validate:"omitempty,max=20"`
	Image      *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
	Active     *bool                 `db:"active"       json:"active"       validate:"omitempty"`
}

type HallResponse struct {
	ID            string  `json:"id"`
	HallTypeID    string  `json:"hall_type_id"`
	HallNumber    string  `json:"hall_number"`
	Image         string  `json:"image"`
	Active        bool    `json:"active"`
	TypeTitle     string  `json:"type_title"`
	TypeBestPrice float64 `json:"type_best_price"`
	gDto.Metadata
}

func (r *HallResponse) FromModel(model model.HallDetail) {
	r.ID = model.ID
	r.HallTypeID = model.HallTypeID
	r.HallNumber = model.HallNumber
	r.Image = model.Image
	r.Active = model.Active
	r.TypeTitle = model.TypeTitle
	r.TypeBestPrice = model.TypeBestPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetHallsResponse struct {
	Halls     []HallResponse `json:"halls"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetHallsResponse) FromModels(models []model.HallDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Halls = make([]HallResponse, len(models))
	for i, mod := range models {
		r.Halls[i].FromModel(mod)
	}
}
