package domain

// AgreementStatus represents the review state of a rental agreement
// request. New submissions start as pending; an admin decision moves
// them to checked (accepted) or rejected.
type AgreementStatus string

const (
	AgreementPending  AgreementStatus = "pending"
	AgreementChecked  AgreementStatus = "checked"
	AgreementRejected AgreementStatus = "rejected"
)

// IsDecision reports whether s is a status an admin may set on an
// existing agreement.
func (s AgreementStatus) IsDecision() bool {
	return s == AgreementChecked || s == AgreementRejected
}

// Document is an opaque persisted record. Apartments, bookings,
// announcements, coupons and agreements are stored as submitted; this
// layer only decides who may read or write them.
type Document map[string]any
