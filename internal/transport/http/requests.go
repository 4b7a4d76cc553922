package http

import "time"

type registerRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6,max=72"`
	BloodGroup string `json:"bloodGroup" validate:"required,blood_group"`
	Division   string `json:"division" validate:"required,max=100"`
	District   string `json:"district" validate:"required,max=100"`
	Avatar     string `json:"avatar" validate:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type jwtRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=donor admin"`
}

type createDonationRequest struct {
	RequesterName     string `json:"requesterName" validate:"required,min=2,max=100"`
	RequesterEmail    string `json:"requesterEmail" validate:"required,email"`
	RecipientName     string `json:"recipientName" validate:"required,max=100"`
	HospitalName      string `json:"hospitalName" validate:"required,max=200"`
	FullAddress       string `json:"fullAddress" validate:"required,max=500"`
	Division          string `json:"division" validate:"required,max=100"`
	RecipientDistrict string `json:"recipientDistrict" validate:"omitempty,max=100"`
	District          string `json:"district" validate:"required,max=100"`
	BloodGroup        string `json:"bloodGroup" validate:"required,blood_group"`
	DonationDate      string `json:"donationDate" validate:"required"`
	DonationTime      string `json:"donationTime" validate:"required"`
	Message           string `json:"message" validate:"omitempty,max=1000"`
}

type updateDonationRequest struct {
	RequesterName     *string `json:"requesterName" validate:"omitempty,min=2,max=100"`
	RecipientName     *string `json:"recipientName" validate:"omitempty,max=100"`
	HospitalName      *string `json:"hospitalName" validate:"omitempty,max=200"`
	FullAddress       *string `json:"fullAddress" validate:"omitempty,max=500"`
	Division          *string `json:"division" validate:"omitempty,max=100"`
	RecipientDistrict *string `json:"recipientDistrict" validate:"omitempty,max=100"`
	District          *string `json:"district" validate:"omitempty,max=100"`
	BloodGroup        *string `json:"bloodGroup" validate:"omitempty,blood_group"`
	DonationDate      *string `json:"donationDate" validate:"omitempty"`
	DonationTime      *string `json:"donationTime" validate:"omitempty"`
	Message           *string `json:"message" validate:"omitempty,max=1000"`
	DonorName         *string `json:"donorName" validate:"omitempty,max=100"`
	DonorEmail        *string `json:"donorEmail" validate:"omitempty,email"`
}

type statusUpdateRequest struct {
	Status     string  `json:"status" validate:"required,max=20"`
	DonorName  *string `json:"donorName" validate:"omitempty,max=100"`
	DonorEmail *string `json:"donorEmail" validate:"omitempty,email"`
}

type updateUserRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=100"`
	BloodGroup *string `json:"bloodGroup" validate:"omitempty,blood_group"`
	Division   *string `json:"division" validate:"omitempty,max=100"`
	District   *string `json:"district" validate:"omitempty,max=100"`
	Avatar     *string `json:"avatar" validate:"omitempty,url"`
	Role       *string `json:"role" validate:"omitempty,oneof=donor admin"`
	Status     *string `json:"status" validate:"omitempty,oneof=active blocked"`
}

type recordPaymentRequest struct {
	UserName      string    `json:"userName" validate:"required,max=100"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	Method        string    `json:"method" validate:"omitempty,max=50"`
	TransactionID string    `json:"transactionId" validate:"omitempty,max=100"`
	Status        string    `json:"status" validate:"omitempty,max=20"`
	Date          time.Time `json:"date"`
}

type paymentIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type createBlogRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Image    string `json:"image" validate:"omitempty,url"`
	Category string `json:"category" validate:"required,max=100"`
	Content  string `json:"content" validate:"required"`
}

type updateBlogRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=3,max=200"`
	Image    *string `json:"image" validate:"omitempty,url"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Content  *string `json:"content" validate:"omitempty"`
	Status   *string `json:"status" validate:"omitempty,oneof=draft published"`
}
