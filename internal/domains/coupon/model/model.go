package model

import "inn/shared/model"

const (
	TableName  = "coupons"
	EntityName = "coupon"

	FieldID         = "id"
	FieldAccountID  = "account_id"
	FieldCouponCode = "coupon_code"
	FieldCouponType = "coupon_type"

	TypePercentage = "percentage"
	TypeFixed      = "fixed"
)

type Coupon struct {
	ID          string  `db:"id"`
	AccountID   string  `db:"account_id"`
	CouponCode  string  `db:"coupon_code"`
	CouponType  string  `db:"coupon_type"`
	CouponValue float64 `db:"coupon_value"`
	model.Metadata
}
