package controllers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/domain"
)

// Accepted layouts for the event date, tried in order.
var eventDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

func parseEventDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("must be a valid date (YYYY-MM-DD or RFC 3339)")
}

// CreateEventRequest is the JSON body for POST /api/events. Multipart forms use the same field names plus an optional image file.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	return helpers.ValidationMessages(validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Description, validation.Required),
		validation.Field(&c.Date, validation.Required, validation.By(func(v interface{}) error {
			_, err := parseEventDate(v.(string))
			return err
		})),
		validation.Field(&c.Location, validation.Required),
		validation.Field(&c.Capacity, validation.Required, validation.Min(1)),
	))
}

// CreateEventResponse is the 201 body of POST /api/events.
type CreateEventResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// RateEventRequest is the body for POST /api/events/{id}/rating.
type RateEventRequest struct {
	Rating int `json:"rating"`
}

// Validate implements Validator.
func (r RateEventRequest) Validate() []string {
	return helpers.ValidationMessages(validation.ValidateStruct(&r,
		validation.Field(&r.Rating, validation.Required, validation.Min(domain.MinRating), validation.Max(domain.MaxRating)),
	))
}

type EventController struct {
	Logger         *slog.Logger
	Service        domain.EventService
	Images         domain.ImageStore
	MaxUploadBytes int64
}

func NewEventController(logger *slog.Logger, svc domain.EventService, images domain.ImageStore, maxUploadBytes int64) *EventController {
	return &EventController{
		Logger:         logger,
		Service:        svc,
		Images:         images,
		MaxUploadBytes: maxUploadBytes,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Accepts multipart/form-data (title, description, date, location, capacity, optional image) or JSON. The caller becomes the creator.
// @Tags events
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreateEventRequest
	var image *string
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		var fail string
		req, image, fail = c.readMultipart(w, r)
		if fail != "" {
			badRequest(w, fail)
			return
		}
		if errs := req.Validate(); len(errs) > 0 {
			c.removeImage(r, image)
			badRequest(w, strings.Join(errs, "; "))
			return
		}
	} else if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	date, _ := parseEventDate(req.Date)
	event := domain.NewEvent(req.Title, req.Description, req.Location, date, req.Capacity, identity.UserID, time.Now())
	event.Image = image
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		c.removeImage(r, image)
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			badRequest(w, "All fields are required.")
		case errors.Is(err, domain.ErrUserNotFound):
			notFound(w, "User not found.")
		default:
			internalError(c.Logger, w, r, err)
		}
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, CreateEventResponse{Message: "Event created successfully!", ID: event.ID})
}

// readMultipart parses the form and stores the optional image. A non-empty string is a 400 message.
func (c *EventController) readMultipart(w http.ResponseWriter, r *http.Request) (CreateEventRequest, *string, string) {
	var req CreateEventRequest
	if c.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, c.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(c.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, nil, "Image is too large."
		}
		return req, nil, "invalid multipart form"
	}
	req.Title = strings.TrimSpace(r.FormValue("title"))
	req.Description = strings.TrimSpace(r.FormValue("description"))
	req.Date = r.FormValue("date")
	req.Location = strings.TrimSpace(r.FormValue("location"))
	if s := strings.TrimSpace(r.FormValue("capacity")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return req, nil, "capacity: must be a number"
		}
		req.Capacity = n
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil, ""
	}
	if err != nil {
		return req, nil, "invalid image upload"
	}
	defer file.Close()
	name, err := c.Images.Save(header.Filename, file)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return req, nil, "Image must be a jpg, jpeg, png, gif or webp file."
		}
		c.Logger.ErrorContext(r.Context(), "image save failed", "err", err)
		return req, nil, "invalid image upload"
	}
	return req, &name, ""
}

func (c *EventController) removeImage(r *http.Request, image *string) {
	if image == nil {
		return
	}
	if err := c.Images.Remove(*image); err != nil {
		c.Logger.WarnContext(r.Context(), "orphan image not removed", "image", *image, "err", err)
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns all events with the creator's username, optionally filtered by creator.
// @Tags events
// @Produce json
// @Param created_by query int false "Creator user ID"
// @Success 200 {array} domain.Event
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	var createdBy *int64
	if s := r.URL.Query().Get("created_by"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			badRequest(w, "created_by must be a positive integer")
			return
		}
		createdBy = &id
	}
	events, err := c.Service.ListEvents(r.Context(), createdBy)
	if err != nil {
		internalError(c.Logger, w, r, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		badRequest(w, "Event ID is required.")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "Event not found")
			return
		}
		internalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Admin only. Removes the event with its comments, registrations, favorites and ratings.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		badRequest(w, "Event ID is required.")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "Event not found")
			return
		}
		internalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Event deleted successfully.")
}

// RateEvent godoc
// @Summary Rate an event
// @Description Stores the caller's 1-5 rating, replacing an earlier one.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param rating body RateEventRequest true "Rating"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events/{id}/rating [post]
func (c *EventController) RateEvent(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	id, err := helpers.PathID(r, "id")
	if err != nil {
		badRequest(w, "Event ID is required.")
		return
	}
	var req RateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.RateEvent(r.Context(), id, identity.UserID, req.Rating); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			badRequest(w, "Rating must be between 1 and 5.")
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, "Event not found")
		default:
			internalError(c.Logger, w, r, err)
		}
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Rating saved.")
}
