package handler

import (
	"errors"
	"net/http"
	"time"

	"soly-ticketing/internal/model"
	"soly-ticketing/internal/service"
	apperrors "soly-ticketing/pkg/app_errors"
	"soly-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdHandler struct {
	service service.AdService
}

func NewAdHandler(service service.AdService) *AdHandler {
	return &AdHandler{service: service}
}

func (h *AdHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("ads/types", h.ListAdTypes)
		router.GET("ads/available-dates", h.AvailableDates)
		router.GET("ads/organizers/:user_id", h.AdsOfOrganizer)
		router.POST("ads/reservations", h.ReserveDates)
	}
}

// AvailableDatesRequest 查詢可預約日期
type AvailableDatesRequest struct {
	AdTypeID string `form:"type_id" binding:"required"`
	EventID  string `form:"event_id" binding:"required"`
}

func (h *AdHandler) ListAdTypes(c *gin.Context) {
	adTypes, err := h.service.ListAdTypes(c)
	if err != nil {
		h.handleError(c, err, "ListAdTypes")
		return
	}
	c.JSON(http.StatusOK, adTypes)
}

func (h *AdHandler) AvailableDates(c *gin.Context) {
	var req AvailableDatesRequest
	if err := BindQuery(c, &req); err != nil {
		return
	}
	adTypeID, err := uuid.Parse(req.AdTypeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type_id"})
		return
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_id"})
		return
	}

	dates, err := h.service.AvailableDates(c, adTypeID, eventID)
	if err != nil {
		h.handleError(c, err, "AvailableDates")
		return
	}

	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, model.DateKey(d))
	}
	c.JSON(http.StatusOK, gin.H{"available_dates": formatted})
}

func (h *AdHandler) AdsOfOrganizer(c *gin.Context) {
	userID, ok := ParseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	reservations, err := h.service.AdsOfOrganizer(c, userID)
	if err != nil {
		h.handleError(c, err, "AdsOfOrganizer")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *AdHandler) ReserveDates(c *gin.Context) {
	var req model.ReserveAdDatesRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	organizerUserID, err := uuid.Parse(req.OrganizerUserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid org_id"})
		return
	}
	adTypeID, err := uuid.Parse(req.AdTypeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type_id"})
		return
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_id"})
		return
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_list"})
		return
	}

	results, err := h.service.ReserveDates(c, organizerUserID, adTypeID, eventID, req.Image, dates)
	if err != nil {
		h.handleError(c, err, "ReserveDates")
		return
	}

	// 有任一日期提交成功就 201，否則 409 連同逐日結果一起回
	status := http.StatusConflict
	for _, result := range results {
		if result.Outcome == model.DateOutcomeCommitted {
			status = http.StatusCreated
			break
		}
	}
	c.JSON(status, gin.H{"results": results})
}

// parseDates 接受 YYYY-MM-DD 或 RFC3339，統一成 UTC 午夜
func parseDates(raw []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			d, err = time.Parse(time.RFC3339, s)
			if err != nil {
				return nil, err
			}
		}
		dates = append(dates, model.DateOnly(d))
	}
	return dates, nil
}

func (h *AdHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrOrganizerNotFound):
		log.Warn("Organizer not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Organizer not found"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrAdTypeNotFound):
		log.Warn("Ad type not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ad type not found"})
	case errors.Is(err, apperrors.ErrAdDateCapacityFull):
		log.Warn("Ad date capacity full")
		c.JSON(http.StatusConflict, gin.H{"error": "Ad date capacity full"})
	case errors.Is(err, apperrors.ErrDuplicateAdReservation):
		log.Warn("Duplicate ad reservation")
		c.JSON(http.StatusConflict, gin.H{"error": "Ad reservation already exists for this date"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		log.Error("Store unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
