package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/policy"
)

func TestSelectDiscount(t *testing.T) {
	assert.Equal(t, policy.StudentDiscount, policy.SelectDiscount(domain.UserCategoryStudent))
	assert.Equal(t, policy.NoDiscount, policy.SelectDiscount(domain.UserCategoryStaff))
	assert.Equal(t, policy.NoDiscount, policy.SelectDiscount(domain.UserCategoryAdmin))
	assert.Equal(t, policy.NoDiscount, policy.SelectDiscount(domain.UserCategory("Visitor")))
}

func TestStudentDiscount_Apply(t *testing.T) {
	assert.Equal(t, int64(800), policy.StudentDiscount.Apply(1000))
	assert.Equal(t, int64(400), policy.StudentDiscount.Apply(500))
	// 0.8 * 99 = 79.2 rounds down to 79.
	assert.Equal(t, int64(79), policy.StudentDiscount.Apply(99))
}

func TestNoDiscount_IsIdentity(t *testing.T) {
	assert.Equal(t, int64(1000), policy.NoDiscount.Apply(1000))
	assert.Equal(t, int64(0), policy.NoDiscount.Apply(0))
}
