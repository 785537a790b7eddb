package handler

import (
	"net/http"
	"strconv"
	"time"

	"countdown-server/internal/apierrors"
	"countdown-server/internal/auth"
	"countdown-server/internal/countdown/processor"
	"countdown-server/internal/observability"
	"countdown-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CountdownProcessor
	logger    *observability.Logger
}

func New(processor processor.CountdownProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCountdownRequest represents the HTTP request for creating a countdown
type CreateCountdownRequest struct {
	Title       string                 `json:"title" binding:"required,max=200"`
	Description string                 `json:"description" binding:"max=2000"`
	CoverImage  string                 `json:"coverImage"`
	ThemeColors map[string]interface{} `json:"themeColors"`
	StartDate   *string                `json:"startDate"`
	EndDate     *string                `json:"endDate"`
	TotalDays   *int                   `json:"totalDays"`
	Type        string                 `json:"type" binding:"omitempty,oneof=story qr voucher"`
	QRRewards   []store.LegacyQRReward `json:"qrRewards"`
}

// UpdateCountdownRequest represents the HTTP request for updating a countdown.
// An empty startDate string clears the schedule.
type UpdateCountdownRequest struct {
	Title       *string                `json:"title" binding:"omitempty,max=200"`
	Description *string                `json:"description" binding:"omitempty,max=2000"`
	CoverImage  *string                `json:"coverImage"`
	ThemeColors map[string]interface{} `json:"themeColors"`
	StartDate   *string                `json:"startDate"`
	EndDate     *string                `json:"endDate"`
	TotalDays   *int                   `json:"totalDays"`
	Type        *string                `json:"type" binding:"omitempty,oneof=story qr voucher"`
	QRRewards   []store.LegacyQRReward `json:"qrRewards"`
}

// HandleCreateCountdown handles POST /api/countdowns
func (h *Handler) HandleCreateCountdown(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req CreateCountdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	startDate, ok := parseOptionalDate(c, "startDate", req.StartDate)
	if !ok {
		return
	}
	endDate, ok := parseOptionalDate(c, "endDate", req.EndDate)
	if !ok {
		return
	}

	countdown, err := h.processor.CreateCountdown(c.Request.Context(), userID, processor.CreateCountdownRequest{
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		ThemeColors: req.ThemeColors,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalDays:   req.TotalDays,
		Type:        req.Type,
		QRRewards:   req.QRRewards,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"countdown": countdown})
}

// HandleListCountdowns handles GET /api/countdowns
func (h *Handler) HandleListCountdowns(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	countdowns, err := h.processor.ListCountdowns(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"countdowns": countdowns})
}

// HandleGetCountdown handles GET /api/countdowns/:id
func (h *Handler) HandleGetCountdown(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	countdownID, ok := h.getCountdownID(c)
	if !ok {
		return
	}

	details, err := h.processor.GetCountdown(c.Request.Context(), userID, countdownID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// HandleUpdateCountdown handles PUT /api/countdowns/:id
func (h *Handler) HandleUpdateCountdown(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	countdownID, ok := h.getCountdownID(c)
	if !ok {
		return
	}

	var req UpdateCountdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.UpdateCountdownRequest{
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		ThemeColors: req.ThemeColors,
		TotalDays:   req.TotalDays,
		Type:        req.Type,
		QRRewards:   req.QRRewards,
	}
	if req.StartDate != nil && *req.StartDate == "" {
		params.ClearStartDate = true
	} else {
		if params.StartDate, ok = parseOptionalDate(c, "startDate", req.StartDate); !ok {
			return
		}
	}
	if params.EndDate, ok = parseOptionalDate(c, "endDate", req.EndDate); !ok {
		return
	}

	view, err := h.processor.UpdateCountdown(c.Request.Context(), userID, countdownID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"countdown": view})
}

// HandleDeleteCountdown handles DELETE /api/countdowns/:id
func (h *Handler) HandleDeleteCountdown(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	countdownID, ok := h.getCountdownID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteCountdown(c.Request.Context(), userID, countdownID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Countdown deleted"})
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	caller, ok := auth.FromContext(c.Request.Context())
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return uuid.Nil, false
	}
	return caller.UserID, true
}

func (h *Handler) getCountdownID(c *gin.Context) (uuid.UUID, bool) {
	countdownID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid countdown ID format"))
		return uuid.Nil, false
	}
	c.Request = c.Request.WithContext(observability.WithFields(c.Request.Context(),
		observability.Field{Key: "countdown_id", Value: countdownID.String()},
	))
	return countdownID, true
}

func getDay(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "day must be a number"))
		return 0, false
	}
	return day, true
}

// parseOptionalDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates,
// the latter read as midnight UTC.
func parseOptionalDate(c *gin.Context, field string, value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	t, err := parseDate(*value)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidStartDate,
			field+" must be an RFC 3339 timestamp or a YYYY-MM-DD date"))
		return nil, false
	}
	return &t, true
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, value)
}
