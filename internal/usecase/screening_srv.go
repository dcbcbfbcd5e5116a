package usecase

import (
	"context"
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

type ScreeningService interface {
	GetScreeningByID(ctx context.Context, screeningID string) (*response.ScreeningResponse, error)
	CreateScreening(ctx context.Context, createdBy uuid.UUID, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	UpdateScreening(ctx context.Context, screeningID string, req *request.ScreeningUpdateRequest) (*response.ScreeningResponse, error)
	DeleteScreening(ctx context.Context, screeningID string) error
}

type screeningService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewScreeningService(
	repo *repository.Repository,
	log *zap.Logger,
) ScreeningService {
	return &screeningService{
		repo: repo,
		log:  log.With(zap.String("service", "screening")),
		now:  time.Now,
	}
}

func (s *screeningService) GetScreeningByID(ctx context.Context, screeningID string) (*response.ScreeningResponse, error) {
	screening, err := s.findScreening(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
	if err != nil {
		s.log.Error("Failed to get movie for screening",
			zap.Error(err),
			zap.String("screening_id", screeningID),
		)
		return nil, fmt.Errorf("get movie for screening: %w", err)
	}

	if movie == nil {
		resp := response.ScreeningToResponse(screening)
		return &resp, nil
	}

	resp := response.ScreeningToDetailResponse(screening, movie.DurationInMinutes)
	return &resp, nil
}

func (s *screeningService) CreateScreening(ctx context.Context, createdBy uuid.UUID, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create screening validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	cinemaID, err := uuid.Parse(req.CinemaID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cinema id", ErrValidation)
	}
	auditoriumID, err := uuid.Parse(req.AuditoriumID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid auditorium id", ErrValidation)
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie id", ErrValidation)
	}

	showDate, err := schedule.ParseDate(req.ShowDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid show date, expected YYYY-MM-DD", ErrValidation)
	}
	if schedule.IsPastDate(showDate, s.now()) {
		return nil, fmt.Errorf("show date %s: %w", req.ShowDate, ErrPastDate)
	}

	movie, err := s.resolveVenue(ctx, cinemaID, auditoriumID, movieID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	screening := &entity.Screening{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CinemaID:     cinemaID,
		AuditoriumID: auditoriumID,
		MovieID:      movieID,
		ShowDate:     showDate,
		StartTime:    req.StartTime,
		Type:         entity.ScreeningType(req.Type),
		Pricing:      req.Pricing,
		Language:     req.Language,
		Subtitle:     req.Subtitle,
		CreatedBy:    createdBy,
	}

	if err := s.checkConflict(ctx, screening, movie.DurationInMinutes, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.repo.Screening.Create(ctx, screening); err != nil {
		s.log.Error("Failed to create screening",
			zap.Error(err),
			zap.String("auditorium_id", req.AuditoriumID),
		)
		return nil, fmt.Errorf("create screening: %w", err)
	}

	s.log.Info("Screening created",
		zap.String("screening_id", screening.ID.String()),
		zap.String("auditorium_id", req.AuditoriumID),
		zap.String("show_date", req.ShowDate),
		zap.Int("start_time", req.StartTime),
		zap.String("type", req.Type),
	)

	resp := response.ScreeningToDetailResponse(screening, movie.DurationInMinutes)
	return &resp, nil
}

func (s *screeningService) UpdateScreening(ctx context.Context, screeningID string, req *request.ScreeningUpdateRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update screening validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	screening, err := s.findScreening(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	if req.AuditoriumID != nil {
		auditoriumID, err := uuid.Parse(*req.AuditoriumID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid auditorium id", ErrValidation)
		}
		screening.AuditoriumID = auditoriumID
	}
	if req.MovieID != nil {
		movieID, err := uuid.Parse(*req.MovieID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid movie id", ErrValidation)
		}
		screening.MovieID = movieID
	}
	if req.ShowDate != nil {
		showDate, err := schedule.ParseDate(*req.ShowDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid show date, expected YYYY-MM-DD", ErrValidation)
		}
		if schedule.IsPastDate(showDate, s.now()) {
			return nil, fmt.Errorf("show date %s: %w", *req.ShowDate, ErrPastDate)
		}
		screening.ShowDate = showDate
	}
	if req.StartTime != nil {
		screening.StartTime = *req.StartTime
	}
	if req.Type != nil {
		screening.Type = entity.ScreeningType(*req.Type)
	}
	if req.Pricing != nil {
		screening.Pricing = *req.Pricing
	}
	if req.Language != nil {
		screening.Language = *req.Language
	}
	if req.Subtitle != nil {
		screening.Subtitle = *req.Subtitle
	}

	movie, err := s.resolveVenue(ctx, screening.CinemaID, screening.AuditoriumID, screening.MovieID)
	if err != nil {
		return nil, err
	}

	// Re-check with the screening's own record excluded so an in-place
	// update does not collide with itself.
	if err := s.checkConflict(ctx, screening, movie.DurationInMinutes, screening.ID); err != nil {
		return nil, err
	}

	screening.UpdatedAt = s.now()
	if err := s.repo.Screening.Update(ctx, screening); err != nil {
		s.log.Error("Failed to update screening",
			zap.Error(err),
			zap.String("screening_id", screeningID),
		)
		return nil, fmt.Errorf("update screening: %w", err)
	}

	s.log.Info("Screening updated", zap.String("screening_id", screeningID))

	resp := response.ScreeningToDetailResponse(screening, movie.DurationInMinutes)
	return &resp, nil
}

func (s *screeningService) DeleteScreening(ctx context.Context, screeningID string) error {
	screening, err := s.findScreening(ctx, screeningID)
	if err != nil {
		return err
	}

	if err := s.repo.Screening.Delete(ctx, screening.ID); err != nil {
		s.log.Error("Failed to delete screening",
			zap.Error(err),
			zap.String("screening_id", screeningID),
		)
		return fmt.Errorf("delete screening: %w", err)
	}

	s.log.Info("Screening deleted", zap.String("screening_id", screeningID))
	return nil
}

// checkConflict loads the occupied slots of the target auditorium and tests
// the candidate against them. A Scheduled candidate competes with same-date
// screenings plus every recurring one; a Recurring candidate occupies its
// slot on every date and therefore competes with the auditorium's entire
// timetable. excludeID drops the screening's own record on update.
func (s *screeningService) checkConflict(ctx context.Context, screening *entity.Screening, durationMinutes int, excludeID uuid.UUID) error {
	var (
		slots []schedule.Slot
		err   error
	)
	if screening.IsRecurring() {
		slots, err = s.repo.Screening.FindAllSlots(ctx, screening.AuditoriumID, excludeID)
	} else {
		slots, err = s.repo.Screening.FindSlotsForConflict(ctx, screening.AuditoriumID, screening.ShowDate, excludeID)
	}
	if err != nil {
		s.log.Error("Failed to load screening slots",
			zap.Error(err),
			zap.String("auditorium_id", screening.AuditoriumID.String()),
		)
		return fmt.Errorf("load screening slots: %w", err)
	}

	candidate := schedule.NewInterval(screening.StartTime, schedule.DurationHours(durationMinutes))
	if conflictID, found := schedule.FindConflict(candidate, slots); found {
		s.log.Warn("Screening conflict detected",
			zap.String("auditorium_id", screening.AuditoriumID.String()),
			zap.String("conflicting_screening_id", conflictID.String()),
			zap.Int("start_time", screening.StartTime),
		)
		return fmt.Errorf("overlaps screening %s: %w", conflictID, ErrSchedulingConflict)
	}
	return nil
}

// resolveVenue checks the cinema, auditorium and movie all exist and that
// the auditorium belongs to the cinema, and returns the movie so callers
// can derive the screening's duration.
func (s *screeningService) resolveVenue(ctx context.Context, cinemaID, auditoriumID, movieID uuid.UUID) (*entity.Movie, error) {
	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaID)
	if err != nil {
		return nil, fmt.Errorf("get cinema: %w", err)
	}
	if cinema == nil {
		return nil, fmt.Errorf("cinema %s: %w", cinemaID, ErrNotFound)
	}

	auditorium, err := s.repo.Auditorium.FindByID(ctx, auditoriumID)
	if err != nil {
		return nil, fmt.Errorf("get auditorium: %w", err)
	}
	if auditorium == nil || auditorium.CinemaID != cinemaID {
		return nil, fmt.Errorf("auditorium %s: %w", auditoriumID, ErrNotFound)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	return movie, nil
}

func (s *screeningService) findScreening(ctx context.Context, screeningID string) (*entity.Screening, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid screening id", ErrValidation)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get screening",
			zap.Error(err),
			zap.String("screening_id", screeningID),
		)
		return nil, fmt.Errorf("get screening: %w", err)
	}
	if screening == nil {
		return nil, fmt.Errorf("screening %s: %w", screeningID, ErrNotFound)
	}
	return screening, nil
}
