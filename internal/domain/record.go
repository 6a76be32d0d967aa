package domain

import "time"

type RecordStatus string

const (
	RecordStatusActive         RecordStatus = "ACTIVE"
	RecordStatusReturnedOnTime RecordStatus = "RETURNED_ON_TIME"
	RecordStatusReturnedLate   RecordStatus = "RETURNED_LATE"
)

// RentalRecord is one borrow-to-return transaction. The who/what/when fields
// and the deposit snapshot are fixed at creation; the settlement fields are
// written exactly once, when the record leaves ACTIVE. Records are permanent
// history and are never deleted. ItemName is a value copy, so a record stays
// valid even if the item is later removed from the catalog.
type RentalRecord struct {
	ID                string       `json:"id"`
	UserID            string       `json:"user_id"`
	UserName          string       `json:"user_name"`
	ItemName          string       `json:"item_name"`
	RentalTime        time.Time    `json:"rental_time"`
	DueDate           time.Time    `json:"due_date"`
	DepositPaidCents  int64        `json:"deposit_paid_cents"`
	ReturnTime        *time.Time   `json:"return_time,omitempty"`
	RefundAmountCents int64        `json:"refund_amount_cents"`
	RefundPolicy      string       `json:"refund_policy,omitempty"`
	Status            RecordStatus `json:"status"`
}

// Settled reports whether the record has left the ACTIVE state.
func (r *RentalRecord) Settled() bool {
	return r.Status != RecordStatusActive
}
