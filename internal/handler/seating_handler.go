package handler

import (
	"errors"
	"net/http"

	"soly-ticketing/internal/service"
	apperrors "soly-ticketing/pkg/app_errors"
	"soly-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SeatingHandler struct {
	service service.SeatingService
}

func NewSeatingHandler(service service.SeatingService) *SeatingHandler {
	return &SeatingHandler{service: service}
}

func (h *SeatingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("locations/:location_id/blocks", h.CreateBlocks)
		router.GET("locations/:location_id/seating-blocks", h.BlocksForLocation)
		router.GET("locations/:location_id/seating-blocks/events/:event_id", h.BlocksWithEventAvailability)
		router.GET("events/:event_id/seat-capacity", h.EventSeatCapacity)
	}
}

// CreateBlocksBody 建立座位區塊請求（location 從路徑帶入）
type CreateBlocksBody struct {
	NumOfRows    int    `json:"num_of_rows" binding:"required,min=1"`
	NumOfColumns int    `json:"num_of_columns" binding:"required,min=1"`
	BlockName    string `json:"block_name" binding:"required"`
}

func (h *SeatingHandler) CreateBlocks(c *gin.Context) {
	locationID, ok := ParseUUIDParam(c, "location_id")
	if !ok {
		return
	}
	var body CreateBlocksBody
	if err := BindJson(c, &body); err != nil {
		return
	}

	result, err := h.service.CreateBlocks(c, locationID, body.NumOfRows, body.NumOfColumns, body.BlockName)
	if err != nil {
		h.handleError(c, err, "CreateBlocks")
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *SeatingHandler) BlocksForLocation(c *gin.Context) {
	locationID, ok := ParseUUIDParam(c, "location_id")
	if !ok {
		return
	}

	blocks, err := h.service.BlocksForLocation(c, locationID)
	if err != nil {
		h.handleError(c, err, "BlocksForLocation")
		return
	}
	c.JSON(http.StatusOK, blocks)
}

func (h *SeatingHandler) BlocksWithEventAvailability(c *gin.Context) {
	locationID, ok := ParseUUIDParam(c, "location_id")
	if !ok {
		return
	}
	eventID, ok := ParseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	blocks, err := h.service.BlocksWithEventAvailability(c, locationID, eventID)
	if err != nil {
		h.handleError(c, err, "BlocksWithEventAvailability")
		return
	}
	c.JSON(http.StatusOK, blocks)
}

func (h *SeatingHandler) EventSeatCapacity(c *gin.Context) {
	eventID, ok := ParseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	capacity, err := h.service.EventSeatCapacity(c, eventID)
	if err != nil {
		h.handleError(c, err, "EventSeatCapacity")
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_seats": capacity})
}

func (h *SeatingHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrLocationNotFound):
		log.Warn("Location not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
	case errors.Is(err, apperrors.ErrSeatingBlockNotFound):
		log.Warn("No seating blocks for location")
		c.JSON(http.StatusNotFound, gin.H{"error": "No seating blocks found for location"})
	case errors.Is(err, apperrors.ErrTicketCategoryNotFound):
		log.Warn("No ticket category for event")
		c.JSON(http.StatusNotFound, gin.H{"error": "No ticket category found for event"})
	case errors.Is(err, apperrors.ErrZeroSeatCapacity):
		log.Warn("Zero seat capacity")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticket categories claim zero seats"})
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
