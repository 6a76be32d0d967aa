package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/policy"
)

func TestRefundPolicy_Calculate(t *testing.T) {
	assert.Equal(t, int64(1000), policy.FullRefund.Calculate(1000))
	assert.Equal(t, int64(900), policy.ServiceFee.Calculate(1000))
	assert.Equal(t, int64(500), policy.LatePenalty.Calculate(1000))

	// Rounds to the nearest cent rather than truncating.
	assert.Equal(t, int64(90), policy.ServiceFee.Calculate(99))
	assert.Equal(t, int64(50), policy.LatePenalty.Calculate(99))
	assert.Equal(t, int64(0), policy.LatePenalty.Calculate(0))
}

func TestSelectRefund_OnTime(t *testing.T) {
	assert.Equal(t, policy.FullRefund, policy.SelectRefund(domain.UserCategoryStudent, false))
	assert.Equal(t, policy.ServiceFee, policy.SelectRefund(domain.UserCategoryStaff, false))
	assert.Equal(t, policy.ServiceFee, policy.SelectRefund(domain.UserCategoryAdmin, false))
}

func TestSelectRefund_LatenessDominates(t *testing.T) {
	// A late return is penalized regardless of who returns it.
	for _, cat := range []domain.UserCategory{
		domain.UserCategoryStudent,
		domain.UserCategoryStaff,
		domain.UserCategoryAdmin,
	} {
		assert.Equal(t, policy.LatePenalty, policy.SelectRefund(cat, true), "category %s", cat)
	}
}

func TestSelectRefund_UnknownCategoryFallsBack(t *testing.T) {
	assert.Equal(t, policy.ServiceFee, policy.SelectRefund(domain.UserCategory("Visitor"), false))
	assert.Equal(t, policy.LatePenalty, policy.SelectRefund(domain.UserCategory("Visitor"), true))
}
