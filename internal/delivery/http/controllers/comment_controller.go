package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/domain"
)

const msgCommentRequired = "Comment text is required."

// AddCommentRequest is the body for POST /api/events/{id}/comments.
type AddCommentRequest struct {
	Text string `json:"text"`
}

type CommentController struct {
	Logger  *slog.Logger
	Service domain.CommentService
}

func NewCommentController(logger *slog.Logger, svc domain.CommentService) *CommentController {
	return &CommentController{Logger: logger, Service: svc}
}

// ListComments godoc
// @Summary List comments of an event
// @Tags comments
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} domain.Comment
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events/{id}/comments [get]
func (c *CommentController) ListComments(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "id")
	if err != nil {
		badRequest(w, "Event ID is required.")
		return
	}
	comments, err := c.Service.ListComments(r.Context(), eventID)
	if err != nil {
		internalError(c.Logger, w, r, err)
		return
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	helpers.WriteJSON(w, http.StatusOK, comments)
}

// AddComment godoc
// @Summary Comment on an event
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param comment body AddCommentRequest true "Comment"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events/{id}/comments [post]
func (c *CommentController) AddComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	eventID, err := helpers.PathID(r, "id")
	if err != nil {
		badRequest(w, "Event ID is required.")
		return
	}
	var req AddCommentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(w, msgCommentRequired)
		return
	}
	comment, err := c.Service.AddComment(r.Context(), eventID, identity.UserID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			badRequest(w, msgCommentRequired)
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, msgEventNotFound)
		case errors.Is(err, domain.ErrUserNotFound):
			notFound(w, msgUserNotFound)
		default:
			internalError(c.Logger, w, r, err)
		}
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Admin only.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/events/{id}/comments/{commentId} [delete]
func (c *CommentController) DeleteComment(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "id")
	if err != nil {
		badRequest(w, "Event ID is required.")
		return
	}
	commentID, err := helpers.PathID(r, "commentId")
	if err != nil {
		badRequest(w, "Comment ID is required.")
		return
	}
	if err := c.Service.DeleteComment(r.Context(), eventID, commentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "Comment not found.")
			return
		}
		internalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Comment deleted successfully.")
}
