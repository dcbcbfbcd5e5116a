package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-platform/internal/dto/request"
	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// GetCinemas handles GET /api/cinemas
func (h *CinemaHandler) GetCinemas(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.NewPaginatedRequest(query.Get("page"), query.Get("per_page"))

	var city *string
	if c := query.Get("city"); c != "" {
		city = &c
	}

	cinemas, err := h.service.GetCinemas(r.Context(), &req, city)
	if err != nil {
		respondServiceError(w, h.log, err, "get cinemas")
		return
	}

	utils.ResponseSuccess(w, "Cinemas retrieved successfully", cinemas)
}

// GetCinemaByID handles GET /api/cinemas/{id}
func (h *CinemaHandler) GetCinemaByID(w http.ResponseWriter, r *http.Request) {
	cinema, err := h.service.GetCinemaByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "get cinema by id")
		return
	}

	utils.ResponseSuccess(w, "Cinema retrieved successfully", cinema)
}

// CreateCinema handles POST /api/admin/cinemas
func (h *CinemaHandler) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cinema, err := h.service.CreateCinema(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create cinema")
		return
	}

	utils.ResponseCreated(w, "Cinema created successfully", cinema)
}

// UpdateCinema handles PUT /api/admin/cinemas/{id}
func (h *CinemaHandler) UpdateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cinema, err := h.service.UpdateCinema(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update cinema")
		return
	}

	utils.ResponseSuccess(w, "Cinema updated successfully", cinema)
}

// DeleteCinema handles DELETE /api/admin/cinemas/{id}
func (h *CinemaHandler) DeleteCinema(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCinema(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.log, err, "delete cinema")
		return
	}

	utils.ResponseSuccess(w, "Cinema deleted successfully", nil)
}

// GetAuditoriums handles GET /api/cinemas/{id}/auditoriums
func (h *CinemaHandler) GetAuditoriums(w http.ResponseWriter, r *http.Request) {
	auditoriums, err := h.service.GetAuditoriums(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "get auditoriums")
		return
	}

	utils.ResponseSuccess(w, "Auditoriums retrieved successfully", auditoriums)
}

// CreateAuditorium handles POST /api/admin/cinemas/{id}/auditoriums
func (h *CinemaHandler) CreateAuditorium(w http.ResponseWriter, r *http.Request) {
	var req request.AuditoriumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auditorium, err := h.service.CreateAuditorium(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create auditorium")
		return
	}

	utils.ResponseCreated(w, "Auditorium created successfully", auditorium)
}

// UpdateAuditorium handles PUT /api/admin/cinemas/{id}/auditoriums/{auditoriumId}
func (h *CinemaHandler) UpdateAuditorium(w http.ResponseWriter, r *http.Request) {
	var req request.AuditoriumUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auditorium, err := h.service.UpdateAuditorium(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "auditoriumId"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update auditorium")
		return
	}

	utils.ResponseSuccess(w, "Auditorium updated successfully", auditorium)
}

// DeleteAuditorium handles DELETE /api/admin/cinemas/{id}/auditoriums/{auditoriumId}
func (h *CinemaHandler) DeleteAuditorium(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteAuditorium(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "auditoriumId"))
	if err != nil {
		respondServiceError(w, h.log, err, "delete auditorium")
		return
	}

	utils.ResponseSuccess(w, "Auditorium deleted successfully", nil)
}

// GetScreeningsForDate handles GET /api/cinemas/{id}/screenings?date=YYYY-MM-DD
func (h *CinemaHandler) GetScreeningsForDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	screenings, err := h.service.GetScreeningsForDate(r.Context(), chi.URLParam(r, "id"), date)
	if err != nil {
		respondServiceError(w, h.log, err, "get screenings for date")
		return
	}

	utils.ResponseSuccess(w, "Screenings retrieved successfully", screenings)
}

// GetAuditoriumScreenings handles GET /api/cinemas/{id}/auditoriums/{auditoriumId}/screenings?date=YYYY-MM-DD
func (h *CinemaHandler) GetAuditoriumScreenings(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	screenings, err := h.service.GetAuditoriumScreenings(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "auditoriumId"), date)
	if err != nil {
		respondServiceError(w, h.log, err, "get auditorium screenings")
		return
	}

	utils.ResponseSuccess(w, "Screenings retrieved successfully", screenings)
}
