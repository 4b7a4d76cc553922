// package api defines the JSON shapes exchanged with the web client and the
// admin console. Field names follow the contract the single-page client
// already speaks.
package api

import "time"

// DonationRequest is the full request record returned to clients.
type DonationRequest struct {
	ID                string    `json:"_id"`
	RequesterName     string    `json:"requesterName"`
	RequesterEmail    string    `json:"requesterEmail"`
	RecipientName     string    `json:"recipientName"`
	HospitalName      string    `json:"hospitalName"`
	FullAddress       string    `json:"fullAddress"`
	Division          string    `json:"division"`
	RecipientDistrict string    `json:"recipientDistrict"`
	District          string    `json:"district"`
	BloodGroup        string    `json:"bloodGroup"`
	DonationDate      string    `json:"donationDate"`
	DonationTime      string    `json:"donationTime"`
	Message           string    `json:"message"`
	Status            string    `json:"status"`
	DonorName         *string   `json:"donorName"`
	DonorEmail        *string   `json:"donorEmail"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// DonationRequestPayload is the submission body for a new request. Status and
// donor fields are intentionally absent: the engine sets them.
type DonationRequestPayload struct {
	RequesterName     string
	RequesterEmail    string
	RecipientName     string
	HospitalName      string
	FullAddress       string
	Division          string
	RecipientDistrict string
	District          string
	BloodGroup        string
	DonationDate      string
	DonationTime      string
	Message           string
}

// RequestUpdatePayload is a partial edit; nil fields stay untouched.
type RequestUpdatePayload struct {
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

// StatusUpdatePayload carries a status transition with its donor assignment.
type StatusUpdatePayload struct {
	Status     string
	DonorName  *string
	DonorEmail *string
}

// SearchFilter holds the optional search query parameters.
type SearchFilter struct {
	BloodGroup string
	Division   string
	District   string
}

// Mutation acknowledgement shapes, matching the legacy client contract.
type (
	InsertResult struct {
		InsertedID string `json:"insertedId"`
	}

	ModifyResult struct {
		ModifiedCount int64 `json:"modifiedCount"`
	}

	DeleteResult struct {
		DeletedCount int64 `json:"deletedCount"`
	}
)

// User is an account record as exposed to clients; the credential hash never
// leaves the service layer.
type User struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	BloodGroup string    `json:"bloodGroup"`
	Division   string    `json:"division"`
	District   string    `json:"district"`
	Avatar     string    `json:"avatar"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuthResponse is the login result: a bearer token plus a user summary.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// AuthUser is the trimmed user summary embedded in AuthResponse.
type AuthUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenResponse wraps a standalone issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalDonors   int     `json:"totalDonors"`
	TotalRequests int     `json:"totalRequests"`
	TotalFunding  float64 `json:"totalFunding"`
}

// Payment is a recorded funding payment.
type Payment struct {
	ID            string    `json:"_id"`
	UserName      string    `json:"userName"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	PaidAt        time.Time `json:"date"`
}

// Blog is a blog post as exposed to clients.
type Blog struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
