// package http implements the HTTP transport layer for the service.
// It handles incoming requests, decodes them, calls the appropriate service
// methods, and encodes the responses.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sheponsu/blood-aid-server/internal/apperrors"
	"github.com/sheponsu/blood-aid-server/internal/repository"
	"github.com/sheponsu/blood-aid-server/internal/service"
	"github.com/sheponsu/blood-aid-server/internal/validation"
	"github.com/sheponsu/blood-aid-server/pkg/api"
	"github.com/sheponsu/blood-aid-server/pkg/logger/sl"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the dependencies for the HTTP server: the logger, the token
// verifier, the user directory for admin re-checks and the service interfaces.
type Server struct {
	log       *slog.Logger
	verifier  TokenVerifier
	directory repository.UserStore

	donationService service.DonationService
	authService     service.AuthService
	userService     service.UserService
	paymentService  service.PaymentService
	blogService     service.BlogService
	adminService    service.AdminService
}

// NewServer creates a new instance of the HTTP server.
func NewServer(
	log *slog.Logger,
	verifier TokenVerifier,
	directory repository.UserStore,
	ds service.DonationService,
	as service.AuthService,
	us service.UserService,
	ps service.PaymentService,
	bs service.BlogService,
	ads service.AdminService,
) *Server {
	return &Server{
		log:             log,
		verifier:        verifier,
		directory:       directory,
		donationService: ds,
		authService:     as,
		userService:     us,
		paymentService:  ps,
		blogService:     bs,
		adminService:    ads,
	}
}

// Routes sets up the router with all middleware and API endpoints. The paths
// follow the contract the single-page client already speaks.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(s.metricsMiddleware)

	mux.Handle("/metrics", promhttp.Handler())

	mux.Post("/register", s.register)
	mux.Post("/login", s.login)
	mux.Post("/jwt", s.issueToken)

	mux.Get("/donation-request/{id}", s.getRequest)
	mux.Get("/donation-requests-pending", s.listPendingRequests)
	mux.Get("/search-requests", s.searchRequests)

	mux.Get("/blogs-published", s.listPublishedBlogs)
	mux.Get("/blog/{id}", s.getBlog)

	mux.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Post("/donation-requests", s.createRequest)
		r.Get("/my-donation-requests/{email}", s.listMyRequests)
		r.Patch("/donation-request/{id}", s.updateRequest)
		r.Patch("/donation-request/status/{id}", s.updateRequestStatus)
		r.Delete("/donation-request/{id}", s.deleteRequest)

		r.Get("/user/{email}", s.getUser)
		r.Patch("/user/{email}", s.updateUser)

		r.Post("/payments", s.recordPayment)
		r.Post("/create-payment-intent", s.createPaymentIntent)

		r.Group(func(ar chi.Router) {
			ar.Use(s.requireAdmin)

			ar.Get("/donation-requests", s.listAllRequests)
			ar.Get("/users", s.listUsers)
			ar.Patch("/users/{id}", s.adminUpdateUser)
			ar.Get("/admin-stats", s.adminStats)
			ar.Get("/payments", s.listPayments)
			ar.Post("/blogs", s.createBlog)
			ar.Get("/blogs", s.listBlogs)
			ar.Patch("/blog/{id}", s.updateBlog)
			ar.Delete("/blog/{id}", s.deleteBlog)
		})
	})

	return mux
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.register"

	var req registerRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	err := s.authService.Register(r.Context(), service.RegisterPayload{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		BloodGroup: req.BloodGroup,
		Division:   req.Division,
		District:   req.District,
		Avatar:     req.Avatar,
	})
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]string{"message": "registration successful"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.login"

	var req loginRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	resp, err := s.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, resp)
}

func (s *Server) issueToken(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.issueToken"

	var req jwtRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	resp, err := s.authService.IssueToken(r.Context(), req.Email, req.Role)
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, resp)
}

func (s *Server) createRequest(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.createRequest"

	var req createDonationRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	result, err := s.donationService.Create(r.Context(), api.DonationRequestPayload{
		RequesterName:     req.RequesterName,
		RequesterEmail:    req.RequesterEmail,
		RecipientName:     req.RecipientName,
		HospitalName:      req.HospitalName,
		FullAddress:       req.FullAddress,
		Division:          req.Division,
		RecipientDistrict: req.RecipientDistrict,
		District:          req.District,
		BloodGroup:        req.BloodGroup,
		DonationDate:      req.DonationDate,
		DonationTime:      req.DonationTime,
		Message:           req.Message,
	}, identityFrom(r.Context()))
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusCreated, result)
}

func (s *Server) getRequest(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getRequest"

	request, err := s.donationService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, request)
}

func (s *Server) listAllRequests(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listAllRequests"

	requests, err := s.donationService.ListAll(r.Context())
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, requests)
}

func (s *Server) listMyRequests(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listMyRequests"

	requests, err := s.donationService.ListMine(r.Context(), chi.URLParam(r, "email"), identityFrom(r.Context()))
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, requests)
}

func (s *Server) listPendingRequests(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listPendingRequests"

	requests, err := s.donationService.ListPending(r.Context())
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, requests)
}

func (s *Server) searchRequests(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.searchRequests"

	query := r.URL.Query()

	requests, err := s.donationService.Search(r.Context(), api.SearchFilter{
		BloodGroup: query.Get("bloodGroup"),
		Division:   query.Get("division"),
		District:   query.Get("district"),
	})
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, requests)
}

func (s *Server) updateRequest(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.updateRequest"

	var req updateDonationRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	result, err := s.donationService.Update(r.Context(), chi.URLParam(r, "id"), api.RequestUpdatePayload{
		RequesterName:     req.RequesterName,
		RecipientName:     req.RecipientName,
		HospitalName:      req.HospitalName,
		FullAddress:       req.FullAddress,
		Division:          req.Division,
		RecipientDistrict: req.RecipientDistrict,
		District:          req.District,
		BloodGroup:        req.BloodGroup,
		DonationDate:      req.DonationDate,
		DonationTime:      req.DonationTime,
		Message:           req.Message,
		DonorName:         req.DonorName,
		DonorEmail:        req.DonorEmail,
	}, identityFrom(r.Context()))
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, result)
}

func (s *Server) updateRequestStatus(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.updateRequestStatus"

	var req statusUpdateRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	result, err := s.donationService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), api.StatusUpdatePayload{
		Status:     req.Status,
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
	}, identityFrom(r.Context()))
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, result)
}

func (s *Server) deleteRequest(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.deleteRequest"

	result, err := s.donationService.Delete(r.Context(), chi.URLParam(r, "id"), identityFrom(r.Context()))
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, result)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getUser"

	email := chi.URLParam(r, "email")

	identity := identityFrom(r.Context())
	if !identity.IsAdmin() && !identity.IsSelf(email) {
		s.respondError(w, http.StatusForbidden, "forbidden access")
		return
	}

	user, err := s.userService.GetByEmail(r.Context(), email)
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, user)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listUsers"

	users, err := s.userService.ListAll(r.Context())
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, users)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.updateUser"

	var req updateUserRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	result, err := s.userService.Update(r.Context(), chi.URLParam(r, "email"), service.UserUpdatePayload{
		Name:       req.Name,
		BloodGroup: req.BloodGroup,
		Division:   req.Division,
		District:   req.District,
		Avatar:     req.Avatar,
		Role:       req.Role,
		Status:     req.Status,
	}, identityFrom(r.Context()))
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, result)
}

func (s *Server) adminUpdateUser(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.adminUpdateUser"

	var req updateUserRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	result, err := s.userService.AdminUpdate(r.Context(), chi.URLParam(r, "id"), service.UserUpdatePayload{
		Name:       req.Name,
		BloodGroup: req.BloodGroup,
		Division:   req.Division,
		District:   req.District,
		Avatar:     req.Avatar,
		Role:       req.Role,
		Status:     req.Status,
	})
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, result)
}

func (s *Server) adminStats(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.adminStats"

	stats, err := s.adminService.Stats(r.Context())
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, stats)
}

func (s *Server) recordPayment(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.recordPayment"

	var req recordPaymentRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	result, err := s.paymentService.Record(r.Context(), service.PaymentPayload{
		UserName:      req.UserName,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Status:        req.Status,
		PaidAt:        req.Date,
	}, identityFrom(r.Context()))
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusCreated, result)
}

func (s *Server) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.createPaymentIntent"

	var req paymentIntentRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	secret, err := s.paymentService.CreateIntent(r.Context(), req.Amount)
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]string{"clientSecret": secret})
}

func (s *Server) listPayments(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listPayments"

	payments, err := s.paymentService.ListAll(r.Context())
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, payments)
}

func (s *Server) createBlog(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.createBlog"

	var req createBlogRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	result, err := s.blogService.Create(r.Context(), service.BlogPayload{
		Title:    req.Title,
		Image:    req.Image,
		Category: req.Category,
		Content:  req.Content,
	})
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusCreated, result)
}

func (s *Server) getBlog(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getBlog"

	blog, err := s.blogService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, blog)
}

func (s *Server) listBlogs(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listBlogs"

	blogs, err := s.blogService.ListAll(r.Context())
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, blogs)
}

func (s *Server) listPublishedBlogs(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.listPublishedBlogs"

	blogs, err := s.blogService.ListPublished(r.Context())
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, blogs)
}

func (s *Server) updateBlog(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.updateBlog"

	var req updateBlogRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	result, err := s.blogService.Update(r.Context(), chi.URLParam(r, "id"), service.BlogUpdatePayload{
		Title:    req.Title,
		Image:    req.Image,
		Category: req.Category,
		Content:  req.Content,
		Status:   req.Status,
	})
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, result)
}

func (s *Server) deleteBlog(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.deleteBlog"

	result, err := s.blogService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, op, err)
		return
	}

	s.respond(w, http.StatusOK, result)
}

// respond is a helper function to encode data to JSON and write it to the
// response. It centralizes setting the Content-Type header and writing the
// status code.
func (s *Server) respond(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("failed to encode response", sl.Err(err))
		}
	}
}

// respondError is a convenience wrapper around respond for sending simple error messages.
func (s *Server) respondError(w http.ResponseWriter, code int, message string) {
	s.respond(w, code, map[string]string{"error": message})
}

// decodeAndValidate is a helper that deserializes a JSON request body into a
// struct and then runs validation checks on it.
func (s *Server) decodeAndValidate(r *http.Request, v interface{}) error {
	if err := s.decode(r.Body, v); err != nil {
		return err
	}

	if err := validation.ValidateStruct(v); err != nil {
		return err
	}

	return nil
}

// decode is a helper function to decode a JSON request body.
func (s *Server) decode(body io.ReadCloser, v interface{}) error {
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	return nil
}

// handleServiceError provides centralized error handling for all HTTP
// handlers. It logs the internal error and maps it to a user-facing HTTP
// response. Unauthenticated and Forbidden stay distinct: a missing credential
// answers 401, a presented but insufficient one answers 403.
func (s *Server) handleServiceError(w http.ResponseWriter, op string, err error) {
	log := s.log.With(slog.String("op", op))
	log.Error("service error occurred", sl.Err(err))

	var (
		validationErr *validation.ValidationError
		userExistsErr *apperrors.UserAlreadyExistsError
		transitionErr *apperrors.InvalidTransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		s.respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, apperrors.ErrInvalidRequest):
		s.respondError(w, http.StatusBadRequest, "invalid request body")
	case errors.As(err, &userExistsErr):
		s.respondError(w, http.StatusBadRequest, "user already exists")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		s.respondError(w, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error())
	case errors.Is(err, apperrors.ErrUnauthenticated):
		s.respondError(w, http.StatusUnauthorized, "unauthorized access")
	case errors.Is(err, apperrors.ErrForbidden):
		s.respondError(w, http.StatusForbidden, "forbidden access")
	case errors.Is(err, apperrors.ErrNotFound):
		s.respondError(w, http.StatusNotFound, "resource not found")
	case errors.As(err, &transitionErr):
		s.respondError(w, http.StatusConflict, transitionErr.Error())
	default:
		s.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
