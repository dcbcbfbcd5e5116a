package adaptor

import (
	"errors"
	"net/http"

	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Cinema    *CinemaHandler
	Movie     *MovieHandler
	Screening *ScreeningHandler
	Ticket    *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Cinema:    NewCinemaHandler(service.Cinema, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Screening: NewScreeningHandler(service.Screening, log),
		Ticket:    NewTicketHandler(service.Ticket, log),
	}
}

// respondServiceError maps service errors onto HTTP statuses. Anything not
// in the taxonomy is an internal error and only logged, never echoed.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, action string) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrPastDate),
		errors.Is(err, usecase.ErrInvalidSeat):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		utils.ResponseForbidden(w, err.Error())
	case errors.Is(err, usecase.ErrSchedulingConflict),
		errors.Is(err, usecase.ErrSeatAlreadyBooked),
		errors.Is(err, usecase.ErrAlreadyExists):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidSignature):
		utils.ResponseUnauthorized(w, err.Error())
	default:
		log.Error("Unhandled service error",
			zap.Error(err),
			zap.String("action", action),
		)
		utils.ResponseInternalError(w, "Internal server error")
	}
}
