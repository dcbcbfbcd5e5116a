package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/dto/request"
	"cinema-platform/internal/dto/response"
	"cinema-platform/internal/schedule"
	"cinema-platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CinemaService interface {
	GetCinemas(ctx context.Context, req *request.PaginatedRequest, city *string) (*response.PaginatedResponse[response.CinemaResponse], error)
	GetCinemaByID(ctx context.Context, cinemaID string) (*response.CinemaResponse, error)
	CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error)
	UpdateCinema(ctx context.Context, cinemaID string, req *request.CinemaUpdateRequest) (*response.CinemaResponse, error)
	DeleteCinema(ctx context.Context, cinemaID string) error

	GetAuditoriums(ctx context.Context, cinemaID string) ([]response.AuditoriumResponse, error)
	CreateAuditorium(ctx context.Context, cinemaID string, req *request.AuditoriumRequest) (*response.AuditoriumResponse, error)
	UpdateAuditorium(ctx context.Context, cinemaID, auditoriumID string, req *request.AuditoriumUpdateRequest) (*response.AuditoriumResponse, error)
	DeleteAuditorium(ctx context.Context, cinemaID, auditoriumID string) error

	GetScreeningsForDate(ctx context.Context, cinemaID, date string) ([]response.ScreeningResponse, error)
	GetAuditoriumScreenings(ctx context.Context, cinemaID, auditoriumID, date string) ([]response.ScreeningResponse, error)
}

type cinemaService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewCinemaService(
	repo *repository.Repository,
	log *zap.Logger,
) CinemaService {
	return &cinemaService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema")),
		now:  time.Now,
	}
}

func (s *cinemaService) GetCinemas(ctx context.Context, req *request.PaginatedRequest, city *string) (*response.PaginatedResponse[response.CinemaResponse], error) {
	cinemas, err := s.repo.Cinema.FindAll(ctx, req.Limit(), req.Offset(), city)
	if err != nil {
		s.log.Error("Failed to get cinemas",
			zap.Error(err),
			zap.Stringp("city", city),
		)
		return nil, fmt.Errorf("get cinemas: %w", err)
	}

	total, err := s.repo.Cinema.CountAll(ctx, city)
	if err != nil {
		s.log.Error("Failed to count cinemas", zap.Error(err))
		return nil, fmt.Errorf("count cinemas: %w", err)
	}

	cinemaResponses := make([]response.CinemaResponse, len(cinemas))
	for i, cinema := range cinemas {
		cinemaResponses[i] = response.CinemaToResponse(cinema)
	}

	return response.NewPaginatedResponse(cinemaResponses, req.Page, req.PerPage, total), nil
}

func (s *cinemaService) GetCinemaByID(ctx context.Context, cinemaID string) (*response.CinemaResponse, error) {
	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cinema validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := s.now()
	cinema := &entity.Cinema{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	}

	if err := s.repo.Cinema.Create(ctx, cinema); err != nil {
		s.log.Error("Failed to create cinema",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create cinema: %w", err)
	}

	s.log.Info("Cinema created",
		zap.String("cinema_id", cinema.ID.String()),
		zap.String("name", cinema.Name),
	)

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) UpdateCinema(ctx context.Context, cinemaID string, req *request.CinemaUpdateRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update cinema validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cinema.Name = *req.Name
	}
	if req.Address != nil {
		cinema.Address = *req.Address
	}
	if req.City != nil {
		cinema.City = *req.City
	}
	cinema.UpdatedAt = s.now()

	if err := s.repo.Cinema.Update(ctx, cinema); err != nil {
		s.log.Error("Failed to update cinema",
			zap.Error(err),
			zap.String("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("update cinema: %w", err)
	}

	s.log.Info("Cinema updated", zap.String("cinema_id", cinemaID))

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) DeleteCinema(ctx context.Context, cinemaID string) error {
	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return err
	}

	if err := s.repo.Cinema.Delete(ctx, cinema.ID); err != nil {
		s.log.Error("Failed to delete cinema",
			zap.Error(err),
			zap.String("cinema_id", cinemaID),
		)
		return fmt.Errorf("delete cinema: %w", err)
	}

	s.log.Info("Cinema deleted", zap.String("cinema_id", cinemaID))
	return nil
}

func (s *cinemaService) GetAuditoriums(ctx context.Context, cinemaID string) ([]response.AuditoriumResponse, error) {
	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	auditoriums, err := s.repo.Auditorium.FindByCinemaID(ctx, cinema.ID)
	if err != nil {
		s.log.Error("Failed to get auditoriums",
			zap.Error(err),
			zap.String("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("get auditoriums: %w", err)
	}

	responses := make([]response.AuditoriumResponse, len(auditoriums))
	for i, auditorium := range auditoriums {
		responses[i] = response.AuditoriumToResponse(auditorium)
	}
	return responses, nil
}

func (s *cinemaService) CreateAuditorium(ctx context.Context, cinemaID string, req *request.AuditoriumRequest) (*response.AuditoriumResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create auditorium validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	auditorium := &entity.Auditorium{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CinemaID: cinema.ID,
		Number:   req.Number,
		Capacity: req.Capacity,
		Type:     entity.AuditoriumType(req.Type),
		SeatLayout: entity.SeatLayout{
			Rows:        req.Rows,
			SeatsPerRow: req.SeatsPerRow,
		},
		ScreenSize:  req.ScreenSize,
		SoundSystem: req.SoundSystem,
		Projection:  req.Projection,
	}

	if err := s.repo.Auditorium.Create(ctx, auditorium); err != nil {
		if errors.Is(err, repository.ErrDuplicateAuditorium) {
			return nil, fmt.Errorf("auditorium number %d: %w", req.Number, ErrAlreadyExists)
		}
		s.log.Error("Failed to create auditorium",
			zap.Error(err),
			zap.String("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("create auditorium: %w", err)
	}

	s.log.Info("Auditorium created",
		zap.String("auditorium_id", auditorium.ID.String()),
		zap.String("cinema_id", cinemaID),
		zap.Int("number", auditorium.Number),
	)

	resp := response.AuditoriumToResponse(auditorium)
	return &resp, nil
}

func (s *cinemaService) UpdateAuditorium(ctx context.Context, cinemaID, auditoriumID string, req *request.AuditoriumUpdateRequest) (*response.AuditoriumResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update auditorium validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	auditorium, err := s.findAuditorium(ctx, cinemaID, auditoriumID)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		auditorium.Number = *req.Number
	}
	if req.Capacity != nil {
		auditorium.Capacity = *req.Capacity
	}
	if req.Type != nil {
		auditorium.Type = entity.AuditoriumType(*req.Type)
	}
	if req.Rows != nil {
		auditorium.SeatLayout.Rows = *req.Rows
	}
	if req.SeatsPerRow != nil {
		auditorium.SeatLayout.SeatsPerRow = *req.SeatsPerRow
	}
	if req.ScreenSize != nil {
		auditorium.ScreenSize = *req.ScreenSize
	}
	if req.SoundSystem != nil {
		auditorium.SoundSystem = *req.SoundSystem
	}
	if req.Projection != nil {
		auditorium.Projection = *req.Projection
	}
	auditorium.UpdatedAt = s.now()

	if err := s.repo.Auditorium.Update(ctx, auditorium); err != nil {
		if errors.Is(err, repository.ErrDuplicateAuditorium) {
			return nil, fmt.Errorf("auditorium number %d: %w", auditorium.Number, ErrAlreadyExists)
		}
		s.log.Error("Failed to update auditorium",
			zap.Error(err),
			zap.String("auditorium_id", auditoriumID),
		)
		return nil, fmt.Errorf("update auditorium: %w", err)
	}

	s.log.Info("Auditorium updated", zap.String("auditorium_id", auditoriumID))

	resp := response.AuditoriumToResponse(auditorium)
	return &resp, nil
}

func (s *cinemaService) DeleteAuditorium(ctx context.Context, cinemaID, auditoriumID string) error {
	auditorium, err := s.findAuditorium(ctx, cinemaID, auditoriumID)
	if err != nil {
		return err
	}

	if err := s.repo.Auditorium.Delete(ctx, auditorium.ID); err != nil {
		s.log.Error("Failed to delete auditorium",
			zap.Error(err),
			zap.String("auditorium_id", auditoriumID),
		)
		return fmt.Errorf("delete auditorium: %w", err)
	}

	s.log.Info("Auditorium deleted", zap.String("auditorium_id", auditoriumID))
	return nil
}

// GetScreeningsForDate lists a cinema's program for one calendar day.
// Dates in the past are rejected the same way the scheduling path
// rejects them.
func (s *cinemaService) GetScreeningsForDate(ctx context.Context, cinemaID, date string) ([]response.ScreeningResponse, error) {
	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	showDate, err := schedule.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date, expected YYYY-MM-DD", ErrValidation)
	}

	if schedule.IsPastDate(showDate, s.now()) {
		return nil, fmt.Errorf("date %s: %w", date, ErrPastDate)
	}

	screenings, err := s.repo.Screening.FindByCinemaAndDate(ctx, cinema.ID, showDate)
	if err != nil {
		s.log.Error("Failed to get screenings for cinema",
			zap.Error(err),
			zap.String("cinema_id", cinemaID),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("get screenings: %w", err)
	}

	responses := make([]response.ScreeningResponse, len(screenings))
	for i, screening := range screenings {
		responses[i] = response.ScreeningToResponse(screening)
	}
	return responses, nil
}

// GetAuditoriumScreenings narrows the per-date program to one auditorium.
func (s *cinemaService) GetAuditoriumScreenings(ctx context.Context, cinemaID, auditoriumID, date string) ([]response.ScreeningResponse, error) {
	auditorium, err := s.findAuditorium(ctx, cinemaID, auditoriumID)
	if err != nil {
		return nil, err
	}

	showDate, err := schedule.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date, expected YYYY-MM-DD", ErrValidation)
	}

	if schedule.IsPastDate(showDate, s.now()) {
		return nil, fmt.Errorf("date %s: %w", date, ErrPastDate)
	}

	screenings, err := s.repo.Screening.FindByAuditoriumAndDate(ctx, auditorium.ID, showDate)
	if err != nil {
		s.log.Error("Failed to get screenings for auditorium",
			zap.Error(err),
			zap.String("auditorium_id", auditoriumID),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("get screenings: %w", err)
	}

	responses := make([]response.ScreeningResponse, len(screenings))
	for i, screening := range screenings {
		responses[i] = response.ScreeningToResponse(screening)
	}
	return responses, nil
}

func (s *cinemaService) findCinema(ctx context.Context, cinemaID string) (*entity.Cinema, error) {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cinema id", ErrValidation)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get cinema",
			zap.Error(err),
			zap.String("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("get cinema: %w", err)
	}
	if cinema == nil {
		return nil, fmt.Errorf("cinema %s: %w", cinemaID, ErrNotFound)
	}
	return cinema, nil
}

// findAuditorium resolves an auditorium and checks it belongs to the
// cinema named in the URL.
func (s *cinemaService) findAuditorium(ctx context.Context, cinemaID, auditoriumID string) (*entity.Auditorium, error) {
	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(auditoriumID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid auditorium id", ErrValidation)
	}

	auditorium, err := s.repo.Auditorium.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get auditorium",
			zap.Error(err),
			zap.String("auditorium_id", auditoriumID),
		)
		return nil, fmt.Errorf("get auditorium: %w", err)
	}
	if auditorium == nil || auditorium.CinemaID != cinema.ID {
		return nil, fmt.Errorf("auditorium %s: %w", auditoriumID, ErrNotFound)
	}
	return auditorium, nil
}
