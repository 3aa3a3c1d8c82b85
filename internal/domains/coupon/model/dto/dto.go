package dto

import (
	"inn/internal/domains/coupon/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateCouponRequest struct {
	CouponCode  string  `json:"coupon_code"  validate:"required,max=50"`
	CouponType  string  `json:"coupon_type"  validate:"required,oneof=percentage fixed"`
	CouponValue float64 `json:"coupon_value" validate:"required,gt=0"`
}

func (c *CreateCouponRequest) ToModel(accountID, user string) model.Coupon {
	return model.Coupon{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		CouponCode:  c.CouponCode,
		CouponType:  c.CouponType,
		CouponValue: c.CouponValue,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCouponRequest struct {
	CouponCode  string   `db:"coupon_code"  json:"coupon_code"  validate:"omitempty,max=50"`
	CouponType  string   `db:"coupon_type"  json:"coupon_type"  validate:"omitempty,oneof=percentage fixed"`
	CouponValue *float64 `db:"coupon_value" json:"coupon_value" validate:"omitempty,gt=0"`
}

type CouponResponse struct {
	ID          string  `json:"id"`
	CouponCode  string  `json:"coupon_code"`
	CouponType  string  `json:"coupon_type"`
	CouponValue float64 `json:"coupon_value"`
	gDto.Metadata
}

func (r *CouponResponse) FromModel(model model.Coupon) {
	r.ID = model.ID
	r.CouponCode = model.CouponCode
	r.CouponType = model.CouponType
	r.CouponValue = model.CouponValue
	r.Metadata.FromModel(model.Metadata)
}

type GetCouponsResponse struct {
	Coupons   []CouponResponse `json:"coupons"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetCouponsResponse) FromModels(models []model.Coupon, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Coupons = make([]CouponResponse, len(models))
	for i, mod := range models {
		r.Coupons[i].FromModel(mod)
	}
}
