package dto

import (
	"inn/internal/domains/paidservice/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaidServiceRequest struct {
	Title  string  `json:"title"  validate:"required,max=100"`
	Price  float64 `json:"price"  validate:"required,gte=0"`
	Active *bool   `json:"active" validate:"omitempty"`
}

func (c *CreatePaidServiceRequest) ToModel(accountID, user string) model.PaidService {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.PaidService{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Title:     c.Title,
		Price:     c.Price,
		Active:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaidServiceRequest struct {
	Title  string   `db:"title"  json:"title"  validate:"omitempty,max=100"`
	Price  *float64 `db:"price"  json:"price"  validate:"omitempty,gte=0"`
	Active *bool    `db:"active" json:"active" validate:"omitempty"`
}

type PaidServiceResponse struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
	Active bool    `json:"active"`
	gDto.Metadata
}

func (r *PaidServiceResponse) FromModel(model model.PaidService) {
	r.ID = model.ID
	r.Title = model.Title
	r.Price = model.Price
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetPaidServicesResponse struct {
	PaidServices []PaidServiceResponse `json:"paid_services"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetPaidServicesResponse) FromModels(models []model.PaidService, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.PaidServices = make([]PaidServiceResponse, len(models))
	for i, mod := range models {
		r.PaidServices[i].FromModel(mod)
	}
}
