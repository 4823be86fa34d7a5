package apperrors

import "errors"

var (
	// 目錄查找失敗
	ErrOrganizerNotFound      = errors.New("organizer not found")
	ErrEventNotFound          = errors.New("event not found")
	ErrAdTypeNotFound         = errors.New("ad type not found")
	ErrLocationNotFound       = errors.New("location not found")
	ErrSeatingBlockNotFound   = errors.New("no seating blocks found for location")
	ErrTicketCategoryNotFound = errors.New("no ticket category found for event")
	ErrAdReservationNotFound  = errors.New("ad reservation not found")

	// 廣告日曆
	ErrAdDateCapacityFull     = errors.New("ad date capacity full")
	ErrDuplicateAdReservation = errors.New("ad reservation already exists for event, type and date")

	// 座位
	ErrZeroSeatCapacity = errors.New("ticket categories claim zero seats")

	ErrInvalidInput        = errors.New("invalid input")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrInternalServerError = errors.New("internal server error")
)
