package dto

import (
	"inn/internal/domains/guest/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FullName string  `json:"full_name" validate:"required,max=100"`
	Phone    string  `json:"phone"     validate:"omitempty,max=20"`
	Cnic     *string `json:"cnic"      validate:"omitempty,max=30"`
	IsVip    *bool   `json:"is_vip"    validate:"omitempty"`
}

func (c *CreateGuestRequest) ToModel(accountID, user string) model.Guest {
	isVip := false
	if c.IsVip != nil {
		isVip = *c.IsVip
	}

	return model.Guest{
		ID:        uuid.NewString(),
		AccountID: accountID,
		FullName:  c.FullName,
		Phone:     c.Phone,
		Cnic:      c.Cnic,
		IsVip:     isVip,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FullName string  `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Phone    string  `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
	Cnic     *string `db:"cnic"      json:"cnic"      validate:"omitempty,max=30"`
	IsVip    *bool   `db:"is_vip"    json:"is_vip"    validate:"omitempty"`
}

type GuestResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Phone    string  `json:"phone"`
	Cnic     *string `json:"cnic"`
	IsVip    bool    `json:"is_vip"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.Cnic = model.Cnic
	r.IsVip = model.IsVip
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
