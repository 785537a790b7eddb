package handler

import (
	"net/http"

	"countdown-server/internal/apierrors"
	"countdown-server/internal/countdown/processor"
	"countdown-server/internal/store"

	"github.com/gin-gonic/gin"
)

type DayCardRequest struct {
	Day           int                  `json:"day" binding:"required,gte=1"`
	Title         string               `json:"title" binding:"max=200"`
	Description   string               `json:"description"`
	CoverImage    string               `json:"coverImage"`
	Type          string               `json:"type" binding:"omitempty,oneof=story qr voucher"`
	CGScript      store.RawJSON        `json:"cgScript"`
	QRReward      *store.QRReward      `json:"qrReward"`
	VoucherDetail *store.VoucherDetail `json:"voucherDetail"`
}

func (r DayCardRequest) toInput() processor.DayCardInput {
	return processor.DayCardInput{
		Day:           r.Day,
		Title:         r.Title,
		Description:   r.Description,
		CoverImage:    r.CoverImage,
		Type:          r.Type,
		CGScript:      r.CGScript,
		QRReward:      r.QRReward,
		VoucherDetail: r.VoucherDetail,
	}
}

type SaveDayCardsRequest struct {
	DayCards []DayCardRequest `json:"dayCards" binding:"dive"`
}

type GenerateQRRequest struct {
	Day int `json:"day" binding:"required"`
}

type SavePrintCardRequest struct {
	CanvasJSON      store.RawJSON `json:"canvasJson"`
	PreviewImageURL string        `json:"previewImageUrl"`
}

// HandleSaveDayCards handles PUT /api/countdowns/:id/days
func (h *Handler) HandleSaveDayCards(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	countdownID, ok := h.getCountdownID(c)
	if !ok {
		return
	}

	var req SaveDayCardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	cards := make([]processor.DayCardInput, 0, len(req.DayCards))
	for _, card := range req.DayCards {
		cards = append(cards, card.toInput())
	}

	view, err := h.processor.SaveDayCards(c.Request.Context(), userID, countdownID, cards)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"countdown": view})
}

// HandleSaveDayCard handles PUT /api/countdowns/:id/days/:day
func (h *Handler) HandleSaveDayCard(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	countdownID, ok := h.getCountdownID(c)
	if !ok {
		return
	}
	day, ok := getDay(c)
	if !ok {
		return
	}

	// The path day wins over any day in the body.
	req := DayCardRequest{Day: day}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	req.Day = day

	card, err := h.processor.SaveDayCard(c.Request.Context(), userID, countdownID, req.toInput())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dayCard": card})
}

// HandleGenerateQR handles POST /api/countdowns/:id/generate-qr
func (h *Handler) HandleGenerateQR(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	countdownID, ok := h.getCountdownID(c)
	if !ok {
		return
	}

	var req GenerateQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	qr, err := h.processor.GenerateQR(c.Request.Context(), userID, countdownID, req.Day)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, qr)
}

// HandleListPrintCards handles GET /api/countdowns/:id/print-cards
func (h *Handler) HandleListPrintCards(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	countdownID, ok := h.getCountdownID(c)
	if !ok {
		return
	}

	cards, err := h.processor.ListPrintCards(c.Request.Context(), userID, countdownID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"printCards": cards})
}

// HandleGetPrintCard handles GET /api/countdowns/:id/print-cards/:day
func (h *Handler) HandleGetPrintCard(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	countdownID, ok := h.getCountdownID(c)
	if !ok {
		return
	}
	day, ok := getDay(c)
	if !ok {
		return
	}

	card, err := h.processor.GetPrintCard(c.Request.Context(), userID, countdownID, day)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// HandleSavePrintCard handles PUT /api/countdowns/:id/print-cards/:day
func (h *Handler) HandleSavePrintCard(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	countdownID, ok := h.getCountdownID(c)
	if !ok {
		return
	}
	day, ok := getDay(c)
	if !ok {
		return
	}

	var req SavePrintCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	card, err := h.processor.SavePrintCard(c.Request.Context(), userID, countdownID, day, req.CanvasJSON, req.PreviewImageURL)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}
