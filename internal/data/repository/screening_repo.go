package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/schedule"
	"cinema-platform/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScreeningRepository interface {
	Create(ctx context.Context, screening *entity.Screening) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindByCinemaAndDate(ctx context.Context, cinemaID uuid.UUID, date time.Time) ([]*entity.Screening, error)
	FindByAuditoriumAndDate(ctx context.Context, auditoriumID uuid.UUID, date time.Time) ([]*entity.Screening, error)

	// FindSlotsForConflict returns the timetable slots a candidate screening
	// must be checked against: every screening in the auditorium that falls
	// on the given date plus every recurring one, each with its movie's
	// runtime joined in. excludeID removes the candidate's own row on the
	// update path; pass uuid.Nil on create.
	FindSlotsForConflict(ctx context.Context, auditoriumID uuid.UUID, date time.Time, excludeID uuid.UUID) ([]schedule.Slot, error)

	// FindAllSlots is the recurring-candidate variant: the whole timetable
	// of the auditorium regardless of date.
	FindAllSlots(ctx context.Context, auditoriumID uuid.UUID, excludeID uuid.UUID) ([]schedule.Slot, error)

	Update(ctx context.Context, screening *entity.Screening) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

const screeningColumns = `id, cinema_id, auditorium_id, movie_id, show_date, start_time,
	type, pricing, language, subtitle, created_by, created_at, updated_at`

func scanScreening(row pgx.Row) (*entity.Screening, error) {
	var screening entity.Screening
	err := row.Scan(
		&screening.ID,
		&screening.CinemaID,
		&screening.AuditoriumID,
		&screening.MovieID,
		&screening.ShowDate,
		&screening.StartTime,
		&screening.Type,
		&screening.Pricing,
		&screening.Language,
		&screening.Subtitle,
		&screening.CreatedBy,
		&screening.CreatedAt,
		&screening.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &screening, nil
}

func (r *screeningRepository) Create(ctx context.Context, screening *entity.Screening) error {
	query := `
		INSERT INTO screenings (` + screeningColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		screening.ID,
		screening.CinemaID,
		screening.AuditoriumID,
		screening.MovieID,
		screening.ShowDate,
		screening.StartTime,
		screening.Type,
		screening.Pricing,
		screening.Language,
		screening.Subtitle,
		screening.CreatedBy,
		screening.CreatedAt,
		screening.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create screening",
			zap.Error(err),
			zap.String("movie_id", screening.MovieID.String()),
			zap.String("auditorium_id", screening.AuditoriumID.String()),
			zap.Time("show_date", screening.ShowDate),
		)
		return fmt.Errorf("create screening for movie %s auditorium %s: %w",
			screening.MovieID.String(), screening.AuditoriumID.String(), err)
	}

	return nil
}

func (r *screeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	query := `SELECT ` + screeningColumns + ` FROM screenings WHERE id = $1`

	screening, err := scanScreening(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening by ID %s: %w", id.String(), err)
	}

	return screening, nil
}

func (r *screeningRepository) FindByCinemaAndDate(ctx context.Context, cinemaID uuid.UUID, date time.Time) ([]*entity.Screening, error) {
	query := `
		SELECT ` + screeningColumns + `
		FROM screenings
		WHERE cinema_id = $1 AND (show_date = $2 OR type = 'Recurring')
		ORDER BY start_time
	`

	return r.queryScreenings(ctx, query, cinemaID, date)
}

func (r *screeningRepository) FindByAuditoriumAndDate(ctx context.Context, auditoriumID uuid.UUID, date time.Time) ([]*entity.Screening, error) {
	query := `
		SELECT ` + screeningColumns + `
		FROM screenings
		WHERE auditorium_id = $1 AND (show_date = $2 OR type = 'Recurring')
		ORDER BY start_time
	`

	return r.queryScreenings(ctx, query, auditoriumID, date)
}

func (r *screeningRepository) queryScreenings(ctx context.Context, query string, args ...any) ([]*entity.Screening, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find screenings", zap.Error(err))
		return nil, fmt.Errorf("find screenings: %w", err)
	}
	defer rows.Close()

	var screenings []*entity.Screening
	for rows.Next() {
		screening, err := scanScreening(rows)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, screening)
	}

	return screenings, nil
}

func (r *screeningRepository) FindSlotsForConflict(ctx context.Context, auditoriumID uuid.UUID, date time.Time, excludeID uuid.UUID) ([]schedule.Slot, error) {
	// excludeID = uuid.Nil matches no row, so the same query serves both
	// the create path and the update path.
	query := `
		SELECT s.id, s.start_time, m.duration_in_minutes
		FROM screenings s
		JOIN movies m ON m.id = s.movie_id
		WHERE s.auditorium_id = $1
		  AND (s.show_date = $2 OR s.type = 'Recurring')
		  AND s.id <> $3
	`

	return r.querySlots(ctx, query, auditoriumID, date, excludeID)
}

func (r *screeningRepository) FindAllSlots(ctx context.Context, auditoriumID uuid.UUID, excludeID uuid.UUID) ([]schedule.Slot, error) {
	query := `
		SELECT s.id, s.start_time, m.duration_in_minutes
		FROM screenings s
		JOIN movies m ON m.id = s.movie_id
		WHERE s.auditorium_id = $1 AND s.id <> $2
	`

	return r.querySlots(ctx, query, auditoriumID, excludeID)
}

func (r *screeningRepository) querySlots(ctx context.Context, query string, args ...any) ([]schedule.Slot, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find timetable slots", zap.Error(err))
		return nil, fmt.Errorf("find timetable slots: %w", err)
	}
	defer rows.Close()

	var slots []schedule.Slot
	for rows.Next() {
		var slot schedule.Slot
		if err := rows.Scan(&slot.ID, &slot.StartTime, &slot.DurationMinutes); err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func (r *screeningRepository) Update(ctx context.Context, screening *entity.Screening) error {
	query := `
		UPDATE screenings
		SET auditorium_id = $2, movie_id = $3, show_date = $4, start_time = $5,
		    type = $6, pricing = $7, language = $8, subtitle = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		screening.ID,
		screening.AuditoriumID,
		screening.MovieID,
		screening.ShowDate,
		screening.StartTime,
		screening.Type,
		screening.Pricing,
		screening.Language,
		screening.Subtitle,
		screening.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update screening",
			zap.Error(err),
			zap.String("screening_id", screening.ID.String()),
		)
		return fmt.Errorf("update screening %s: %w", screening.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("screening %s not found", screening.ID.String())
	}

	return nil
}

func (r *screeningRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM screenings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete screening",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return fmt.Errorf("delete screening %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("screening %s not found", id.String())
	}

	r.log.Info("Screening deleted", zap.String("screening_id", id.String()))
	return nil
}
