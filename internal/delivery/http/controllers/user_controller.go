package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/domain"
)

const msgUserNotFound = "User not found."

// SignUpRequest is the request body for POST /api/users/register
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (s SignUpRequest) Validate() []string {
	s.Username = strings.TrimSpace(s.Username)
	s.Email = strings.TrimSpace(s.Email)
	return helpers.ValidationMessages(validation.ValidateStruct(&s,
		validation.Field(&s.Username, validation.Required, validation.Length(1, 50)),
		validation.Field(&s.Email, validation.Required, is.Email),
		validation.Field(&s.Password, validation.Required, validation.Length(8, 0)),
	))
}

// LoginRequest is the request body for POST /api/users/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	l.Email = strings.TrimSpace(l.Email)
	return helpers.ValidationMessages(validation.ValidateStruct(&l,
		validation.Field(&l.Email, validation.Required),
		validation.Field(&l.Password, validation.Required),
	))
}

// LoginResponse is the response body for POST /api/users/login
type LoginResponse struct {
	Token   string `json:"token"`
	UserID  int64  `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
}

// BannedResponse is the 403 body of a login attempt by a banned account.
type BannedResponse struct {
	Message   string `json:"message"`
	IsBanned  bool   `json:"isBanned"`
	BanReason string `json:"banReason"`
}

// UpdateUserRequest is the request body for PATCH /api/users/me. All fields are optional.
type UpdateUserRequest struct {
	Username    *string `json:"username"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// Validate implements Validator.
func (u UpdateUserRequest) Validate() []string {
	var errs []string
	if u.Username == nil && u.Description == nil && u.Image == nil {
		errs = append(errs, "at least one of username, description or image is required")
	}
	if u.Username != nil && strings.TrimSpace(*u.Username) == "" {
		errs = append(errs, "username: cannot be blank")
	}
	return errs
}

// BanRequest is the request body for POST /api/users/admin/ban and /unban. Reason is ignored on unban.
type BanRequest struct {
	UserID int64  `json:"userId"`
	Reason string `json:"reason"`
}

// Validate implements Validator.
func (b BanRequest) Validate() []string {
	return helpers.ValidationMessages(validation.ValidateStruct(&b,
		validation.Field(&b.UserID, validation.Required, validation.Min(int64(1))),
	))
}

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{Logger: logger, Service: svc}
}

// SignUp godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Sign up data"
// @Success 201 {object} domain.User
// @Failure 400 {object} helpers.APIError "code: bad_request (validation or email already in use)"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/users/register [post]
func (c *UserController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.SignUp(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			badRequest(w, "Email is already in use.")
		case errors.Is(err, domain.ErrInvalidInput):
			badRequest(w, err.Error())
		default:
			internalError(c.Logger, w, r, err)
		}
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Returns a bearer token. A banned account gets 403 with the ban reason and no token.
// @Tags users
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} controllers.BannedResponse
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/users/login [post]
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var banned *domain.BannedError
		switch {
		case errors.As(err, &banned):
			helpers.WriteJSON(w, http.StatusForbidden, BannedResponse{Message: "Account banned", IsBanned: true, BanReason: banned.Reason})
		case errors.Is(err, domain.ErrUserNotFound):
			notFound(w, msgUserNotFound)
		case errors.Is(err, domain.ErrInvalidCredentials):
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Invalid credentials.")
		case errors.Is(err, domain.ErrInvalidInput):
			badRequest(w, "Email and password are required.")
		default:
			internalError(c.Logger, w, r, err)
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, UserID: user.ID, IsAdmin: user.IsAdmin})
}

// GetMe godoc
// @Summary Get current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/users/me [get]
func (c *UserController) GetMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	c.writeUser(w, r, identity.UserID)
}

// GetUser godoc
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/users/{id} [get]
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		badRequest(w, "User ID is required.")
		return
	}
	c.writeUser(w, r, id)
}

func (c *UserController) writeUser(w http.ResponseWriter, r *http.Request, id int64) {
	user, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			notFound(w, msgUserNotFound)
			return
		}
		internalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update current user
// @Description Partial update; omitted fields stay unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateUserRequest true "Fields to update"
// @Success 200 {object} domain.User
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/users/me [patch]
func (c *UserController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Update(r.Context(), identity.UserID, domain.UserUpdate{
		Username:    req.Username,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			badRequest(w, err.Error())
		case errors.Is(err, domain.ErrUserNotFound):
			notFound(w, msgUserNotFound)
		default:
			internalError(c.Logger, w, r, err)
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}

// RatingSummary godoc
// @Summary Organizer rating
// @Description Average and count of ratings over all events created by the user.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.RatingSummary
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/users/{id}/rating [get]
func (c *UserController) RatingSummary(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		badRequest(w, "User ID is required.")
		return
	}
	summary, err := c.Service.RatingSummary(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			notFound(w, msgUserNotFound)
			return
		}
		internalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, summary)
}

// Ban godoc
// @Summary Ban a user
// @Description Admin only. Sends a ban notice email to the user.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BanRequest true "User and reason"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/users/admin/ban [post]
func (c *UserController) Ban(w http.ResponseWriter, r *http.Request) {
	var req BanRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Ban(r.Context(), req.UserID, req.Reason); err != nil {
		c.writeModerationError(w, r, err)
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "User banned successfully.")
}

// Unban godoc
// @Summary Unban a user
// @Description Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BanRequest true "User"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/users/admin/unban [post]
func (c *UserController) Unban(w http.ResponseWriter, r *http.Request) {
	var req BanRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Unban(r.Context(), req.UserID); err != nil {
		c.writeModerationError(w, r, err)
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "User unbanned successfully.")
}

func (c *UserController) writeModerationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		notFound(w, msgUserNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		badRequest(w, "User ID is required.")
	default:
		internalError(c.Logger, w, r, err)
	}
}
