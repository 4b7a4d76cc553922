package domain

import (
	"strings"
	"time"
)

// RequestStatus describes the lifecycle state of a donation request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAccepted  RequestStatus = "accepted"
	StatusConfirmed RequestStatus = "confirmed"
	StatusDone      RequestStatus = "done"
	StatusCanceled  RequestStatus = "canceled"
)

// CanonicalStatus lower-cases a caller-supplied status so comparisons and
// storage are uniform. The second return value reports whether the value is
// part of the known vocabulary.
func CanonicalStatus(s string) (RequestStatus, bool) {
	status := RequestStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case StatusPending, StatusAccepted, StatusConfirmed, StatusDone, StatusCanceled:
		return status, true
	}

	return status, false
}

// RequiresDonor reports whether requests in this status must carry a donor
// name/email pair. Donor fields are always set or cleared together.
func (s RequestStatus) RequiresDonor() bool {
	switch s {
	case StatusAccepted, StatusConfirmed, StatusDone:
		return true
	}

	return false
}

// User roles as stored in the users table.
const (
	RoleDonor = "donor"
	RoleAdmin = "admin"
)

// Identity is the caller identity decoded from a verified bearer token.
// A zero Identity means no credential was presented.
type Identity struct {
	Email string
	Role  string
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// IsSelf reports whether the identity owns the given email. Emails are
// compared case-insensitively, matching how tokens are issued.
func (i Identity) IsSelf(email string) bool {
	return i.Email != "" && strings.EqualFold(i.Email, email)
}

// DonationRequest is the central entity: a need for a blood donation with a
// lifecycle status and an optionally assigned donor.
type DonationRequest struct {
	ID                string        `db:"id"`
	RequesterName     string        `db:"requester_name"`
	RequesterEmail    string        `db:"requester_email"`
	RecipientName     string        `db:"recipient_name"`
	HospitalName      string        `db:"hospital_name"`
	FullAddress       string        `db:"full_address"`
	Division          string        `db:"division"`
	RecipientDistrict string        `db:"recipient_district"`
	District          string        `db:"district"`
	BloodGroup        string        `db:"blood_group"`
	DonationDate      string        `db:"donation_date"`
	DonationTime      string        `db:"donation_time"`
	Message           string        `db:"message"`
	Status            RequestStatus `db:"status"`
	DonorName         *string       `db:"donor_name"`
	DonorEmail        *string       `db:"donor_email"`
	CreatedAt         time.Time     `db:"created_at"`
	UpdatedAt         time.Time     `db:"updated_at"`
}

// RequestFilter holds the optional conjunctive search predicates for open
// donation requests. Zero-valued fields impose no constraint.
type RequestFilter struct {
	BloodGroup string
	Division   string
	District   string
}

// RequestUpdate is a partial edit of a donation request. Nil fields are left
// untouched. Status and requester email are not editable through this path;
// donor fields may only change as a pair (enforced by the lifecycle engine).
type RequestUpdate struct {
	RequesterName     *string
	RecipientName     *string
	HospitalName      *string
	FullAddress       *string
	Division          *string
	RecipientDistrict *string
	District          *string
	BloodGroup        *string
	DonationDate      *string
	DonationTime      *string
	Message           *string
	DonorName         *string
	DonorEmail        *string
}

// UserUpdate is a partial edit of a user profile. Nil fields are left
// untouched.
type UserUpdate struct {
	Name       *string
	BloodGroup *string
	Division   *string
	District   *string
	Avatar     *string
	Role       *string
	Status     *string
}

// BlogUpdate is a partial edit of a blog post.
type BlogUpdate struct {
	Title    *string
	Image    *string
	Category *string
	Content  *string
	Status   *string
}

// User is an account record. The lifecycle engine only reads users to
// authorize callers and display donor identity.
type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	BloodGroup   string    `db:"blood_group"`
	Division     string    `db:"division"`
	District     string    `db:"district"`
	Avatar       string    `db:"avatar"`
	Role         string    `db:"role"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Payment is a recorded funding payment. Intent creation happens in an
// external processor; only the settled record lands here.
type Payment struct {
	ID            string    `db:"id"`
	UserName      string    `db:"user_name"`
	Amount        float64   `db:"amount"`
	Method        string    `db:"method"`
	TransactionID string    `db:"transaction_id"`
	Status        string    `db:"status"`
	PaidAt        time.Time `db:"paid_at"`
	CreatedAt     time.Time `db:"created_at"`
}

// Blog statuses.
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

type Blog struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Image     string    `db:"image"`
	Category  string    `db:"category"`
	Content   string    `db:"content"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalDonors   int     `db:"total_donors"`
	TotalRequests int     `db:"total_requests"`
	TotalFunding  float64 `db:"total_funding"`
}
