package handler

import (
	"net/http"

	"countdown-server/internal/apierrors"
	"countdown-server/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssignRequest struct {
	ReceiverIDs    []uuid.UUID `json:"receiverIds"`
	ReceiverEmails []string    `json:"receiverEmails" binding:"dive,email"`
}

type InviteRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
}

// HandleAssign handles POST /api/countdowns/:id/assign
func (h *Handler) HandleAssign(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	countdownID, ok := h.getCountdownID(c)
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.Assign(c.Request.Context(), userID, countdownID, req.ReceiverIDs, req.ReceiverEmails)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleCreateInvitation handles POST /api/countdowns/:id/invite
func (h *Handler) HandleCreateInvitation(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	countdownID, ok := h.getCountdownID(c)
	if !ok {
		return
	}

	var req InviteRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.RespondWithValidationError(c, err)
			return
		}
	}

	link, err := h.processor.CreateInvitation(c.Request.Context(), userID, countdownID, req.Email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// HandleCheckInvitation handles GET /api/countdowns/invite/check/:token
func (h *Handler) HandleCheckInvitation(c *gin.Context) {
	preview, err := h.processor.CheckInvitation(c.Request.Context(), c.Param("token"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// HandleAcceptInvitation handles POST /api/countdowns/invite/accept/:token
func (h *Handler) HandleAcceptInvitation(c *gin.Context) {
	caller, ok := auth.FromContext(c.Request.Context())
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	assignment, err := h.processor.AcceptInvitation(c.Request.Context(), caller.UserID, caller.Role, c.Param("token"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "assignment": assignment})
}
