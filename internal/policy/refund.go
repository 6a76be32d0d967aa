package policy

import (
	"math"

	"campusrent-backend/internal/domain"
)

// RefundPolicy computes how much of a deposit comes back at return time.
// Policies are stateless values; Name is the label shown to the user.
type RefundPolicy struct {
	Name string
	Rate float64
}

// Calculate returns the refunded amount for the given deposit, rounded to the
// nearest cent.
func (p RefundPolicy) Calculate(depositCents int64) int64 {
	return int64(math.Round(p.Rate * float64(depositCents)))
}

var (
	FullRefund  = RefundPolicy{Name: "full deposit refund", Rate: 1.0}
	ServiceFee  = RefundPolicy{Name: "10% service fee", Rate: 0.9}
	LatePenalty = RefundPolicy{Name: "50% late penalty", Rate: 0.5}
)

type refundKey struct {
	category domain.UserCategory
	late     bool
}

// refundTable maps every (category, lateness) combination to a policy.
// Adding a category or changing a fraction is a one-line edit here.
var refundTable = map[refundKey]RefundPolicy{
	{domain.UserCategoryStudent, false}: FullRefund,
	{domain.UserCategoryStaff, false}:   ServiceFee,
	{domain.UserCategoryAdmin, false}:   ServiceFee,
	{domain.UserCategoryStudent, true}:  LatePenalty,
	{domain.UserCategoryStaff, true}:    LatePenalty,
	{domain.UserCategoryAdmin, true}:    LatePenalty,
}

// SelectRefund picks the refund policy for a return. Lateness dominates: a
// late return is penalized regardless of category. Unknown categories fall
// back to the non-student defaults, keeping the function total.
func SelectRefund(category domain.UserCategory, late bool) RefundPolicy {
	if p, ok := refundTable[refundKey{category, late}]; ok {
		return p
	}
	if late {
		return LatePenalty
	}
	return ServiceFee
}
