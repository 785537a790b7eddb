package handler

import (
	"net/http"
	"strconv"

	"countdown-server/internal/apierrors"
	"countdown-server/internal/auth"
	"countdown-server/internal/observability"
	"countdown-server/internal/receiver/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ReceiverProcessor
	logger    *observability.Logger
}

func New(processor processor.ReceiverProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type UnlockDayRequest struct {
	AssignmentID uuid.UUID `json:"assignmentId" binding:"required"`
	QRToken      string    `json:"qrToken" binding:"required"`
}

// HandleListCountdowns handles GET /api/receiver/countdowns
func (h *Handler) HandleListCountdowns(c *gin.Context) {
	receiverID, ok := getReceiverID(c)
	if !ok {
		return
	}

	assignments, err := h.processor.ListAssignments(c.Request.Context(), receiverID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

// HandleGetCountdown handles GET /api/receiver/countdowns/:assignmentId
func (h *Handler) HandleGetCountdown(c *gin.Context) {
	receiverID, ok := getReceiverID(c)
	if !ok {
		return
	}
	assignmentID, ok := getAssignmentID(c)
	if !ok {
		return
	}

	assigned, err := h.processor.GetCountdown(c.Request.Context(), receiverID, assignmentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, assigned)
}

// HandleGetDay handles GET /api/receiver/countdowns/:assignmentId/days/:day
func (h *Handler) HandleGetDay(c *gin.Context) {
	receiverID, ok := getReceiverID(c)
	if !ok {
		return
	}
	assignmentID, ok := getAssignmentID(c)
	if !ok {
		return
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "day must be a number"))
		return
	}

	card, err := h.processor.GetDay(c.Request.Context(), receiverID, assignmentID, day)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// HandleUnlockDay handles POST /api/receiver/unlock-day
func (h *Handler) HandleUnlockDay(c *gin.Context) {
	receiverID, ok := getReceiverID(c)
	if !ok {
		return
	}

	var req UnlockDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.UnlockDay(c.Request.Context(), receiverID, req.AssignmentID, req.QRToken)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func getReceiverID(c *gin.Context) (uuid.UUID, bool) {
	caller, ok := auth.FromContext(c.Request.Context())
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return uuid.Nil, false
	}
	return caller.UserID, true
}

func getAssignmentID(c *gin.Context) (uuid.UUID, bool) {
	assignmentID, err := uuid.Parse(c.Param("assignmentId"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid assignment ID format"))
		return uuid.Nil, false
	}
	return assignmentID, true
}
