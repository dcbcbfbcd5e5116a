package repository

import (
	"context"
	"fmt"

	"cinema-platform/internal/data/entity"
	"cinema-platform/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuditoriumRepository interface {
	Create(ctx context.Context, auditorium *entity.Auditorium) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Auditorium, error)
	FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Auditorium, error)
	Update(ctx context.Context, auditorium *entity.Auditorium) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditoriumRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditoriumRepository(db database.PgxIface, log *zap.Logger) AuditoriumRepository {
	return &auditoriumRepository{
		db:  db,
		log: log.With(zap.String("repository", "auditorium")),
	}
}

func (r *auditoriumRepository) Create(ctx context.Context, auditorium *entity.Auditorium) error {
	query := `
		INSERT INTO auditoriums
			(id, cinema_id, number, capacity, type, layout_rows, layout_seats_per_row,
			 screen_size, sound_system, projection, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		auditorium.ID,
		auditorium.CinemaID,
		auditorium.Number,
		auditorium.Capacity,
		auditorium.Type,
		auditorium.SeatLayout.Rows,
		auditorium.SeatLayout.SeatsPerRow,
		auditorium.ScreenSize,
		auditorium.SoundSystem,
		auditorium.Projection,
		auditorium.CreatedAt,
		auditorium.UpdatedAt,
	)

	if err != nil {
		// One auditorium number per cinema, guarded by a unique index.
		if isUniqueViolation(err, constraintAuditoriumNumber) {
			return ErrDuplicateAuditorium
		}
		r.log.Error("Failed to create auditorium",
			zap.Error(err),
			zap.String("cinema_id", auditorium.CinemaID.String()),
			zap.Int("number", auditorium.Number),
		)
		return fmt.Errorf("create auditorium %d in cinema %s: %w",
			auditorium.Number, auditorium.CinemaID.String(), err)
	}

	return nil
}

func (r *auditoriumRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Auditorium, error) {
	query := `
		SELECT id, cinema_id, number, capacity, type, layout_rows, layout_seats_per_row,
		       screen_size, sound_system, projection, created_at, updated_at
		FROM auditoriums
		WHERE id = $1
	`

	var auditorium entity.Auditorium
	err := r.db.QueryRow(ctx, query, id).Scan(
		&auditorium.ID,
		&auditorium.CinemaID,
		&auditorium.Number,
		&auditorium.Capacity,
		&auditorium.Type,
		&auditorium.SeatLayout.Rows,
		&auditorium.SeatLayout.SeatsPerRow,
		&auditorium.ScreenSize,
		&auditorium.SoundSystem,
		&auditorium.Projection,
		&auditorium.CreatedAt,
		&auditorium.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find auditorium by ID",
			zap.Error(err),
			zap.String("auditorium_id", id.String()),
		)
		return nil, fmt.Errorf("find auditorium by ID %s: %w", id.String(), err)
	}

	return &auditorium, nil
}

func (r *auditoriumRepository) FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Auditorium, error) {
	query := `
		SELECT id, cinema_id, number, capacity, type, layout_rows, layout_seats_per_row,
		       screen_size, sound_system, projection, created_at, updated_at
		FROM auditoriums
		WHERE cinema_id = $1
		ORDER BY number
	`

	rows, err := r.db.Query(ctx, query, cinemaID)
	if err != nil {
		r.log.Error("Failed to find auditoriums by cinema ID",
			zap.Error(err),
			zap.String("cinema_id", cinemaID.String()),
		)
		return nil, fmt.Errorf("find auditoriums by cinema ID %s: %w", cinemaID.String(), err)
	}
	defer rows.Close()

	var auditoriums []*entity.Auditorium
	for rows.Next() {
		var auditorium entity.Auditorium
		err := rows.Scan(
			&auditorium.ID,
			&auditorium.CinemaID,
			&auditorium.Number,
			&auditorium.Capacity,
			&auditorium.Type,
			&auditorium.SeatLayout.Rows,
			&auditorium.SeatLayout.SeatsPerRow,
			&auditorium.ScreenSize,
			&auditorium.SoundSystem,
			&auditorium.Projection,
			&auditorium.CreatedAt,
			&auditorium.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan auditorium row", zap.Error(err))
			return nil, fmt.Errorf("scan auditorium row: %w", err)
		}
		auditoriums = append(auditoriums, &auditorium)
	}

	return auditoriums, nil
}

func (r *auditoriumRepository) Update(ctx context.Context, auditorium *entity.Auditorium) error {
	query := `
		UPDATE auditoriums
		SET number = $2, capacity = $3, type = $4, layout_rows = $5,
		    layout_seats_per_row = $6, screen_size = $7, sound_system = $8,
		    projection = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		auditorium.ID,
		auditorium.Number,
		auditorium.Capacity,
		auditorium.Type,
		auditorium.SeatLayout.Rows,
		auditorium.SeatLayout.SeatsPerRow,
		auditorium.ScreenSize,
		auditorium.SoundSystem,
		auditorium.Projection,
		auditorium.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, constraintAuditoriumNumber) {
			return ErrDuplicateAuditorium
		}
		r.log.Error("Failed to update auditorium",
			zap.Error(err),
			zap.String("auditorium_id", auditorium.ID.String()),
		)
		return fmt.Errorf("update auditorium %s: %w", auditorium.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("auditorium %s not found", auditorium.ID.String())
	}

	return nil
}

func (r *auditoriumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM auditoriums WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete auditorium",
			zap.Error(err),
			zap.String("auditorium_id", id.String()),
		)
		return fmt.Errorf("delete auditorium %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("auditorium %s not found", id.String())
	}

	r.log.Info("Auditorium deleted", zap.String("auditorium_id", id.String()))
	return nil
}
