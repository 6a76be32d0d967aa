package policy

import (
	"math"

	"campusrent-backend/internal/domain"
)

// DiscountPolicy adjusts the base rental fee charged at rent time. It is a
// separate axis from RefundPolicy: discounts apply when borrowing, refunds
// when returning, and the two are never combined into one amount.
type DiscountPolicy interface {
	Apply(baseFeeCents int64) int64
	Name() string
}

type noDiscount struct{}

func (noDiscount) Apply(baseFeeCents int64) int64 { return baseFeeCents }
func (noDiscount) Name() string                   { return "standard rate" }

type percentDiscount struct {
	name string
	rate float64
}

func (p percentDiscount) Apply(baseFeeCents int64) int64 {
	return int64(math.Round(p.rate * float64(baseFeeCents)))
}

func (p percentDiscount) Name() string { return p.name }

var (
	NoDiscount      DiscountPolicy = noDiscount{}
	StudentDiscount DiscountPolicy = percentDiscount{name: "student discount (20%)", rate: 0.8}
)

// SelectDiscount picks the fee policy for a session. Only students get a
// reduced rate; everyone else pays the base fee.
func SelectDiscount(category domain.UserCategory) DiscountPolicy {
	if category == domain.UserCategoryStudent {
		return StudentDiscount
	}
	return NoDiscount
}
