package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-platform/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// captureDB records the statement and arguments of the last Exec so tests
// can assert exactly what would reach Postgres.
type captureDB struct {
	sql     string
	args    []any
	execErr error
	tag     string
}

func (c *captureDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sql = sql
	c.args = args
	if c.execErr != nil {
		return pgconn.CommandTag{}, c.execErr
	}
	tag := c.tag
	if tag == "" {
		tag = "INSERT 0 1"
	}
	return pgconn.NewCommandTag(tag), nil
}

func (c *captureDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected Query")
}

func (c *captureDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return noRow{}
}

func (c *captureDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("unexpected Begin")
}

func (c *captureDB) Ping(ctx context.Context) error { return nil }
func (c *captureDB) Close()                         {}

type noRow struct{}

func (noRow) Scan(dest ...any) error { return pgx.ErrNoRows }

func TestTicketCreateBindsEntityIdentity(t *testing.T) {
	db := &captureDB{}
	repo := NewTicketRepository(db, zap.NewNop())

	ticket := &entity.Ticket{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
		ScreeningID:     uuid.New(),
		CustomerID:      uuid.New(),
		Seat:            entity.Seat{Row: 3, Number: 7},
		PricingCategory: entity.PricingCategoryStandard,
	}

	require.NoError(t, repo.Create(context.Background(), ticket))

	require.Len(t, db.args, 7)
	assert.Equal(t, ticket.ID, db.args[0])
	assert.NotEqual(t, uuid.Nil, db.args[0], "insert must carry the ticket's own id")
	assert.Equal(t, ticket.ScreeningID, db.args[1])
	assert.Equal(t, ticket.CustomerID, db.args[2])
	assert.Equal(t, 3, db.args[3])
	assert.Equal(t, 7, db.args[4])
	assert.Equal(t, entity.PricingCategoryStandard, db.args[5])
	assert.Equal(t, ticket.CreatedAt, db.args[6])
}

func TestTicketCreateMapsOnlySeatConstraint(t *testing.T) {
	ticket := &entity.Ticket{
		BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		ScreeningID: uuid.New(),
		CustomerID:  uuid.New(),
		Seat:        entity.Seat{Row: 1, Number: 1},
	}

	t.Run("seat index violation is a duplicate seat", func(t *testing.T) {
		db := &captureDB{execErr: &pgconn.PgError{
			Code:           "23505",
			ConstraintName: constraintTicketSeat,
		}}
		repo := NewTicketRepository(db, zap.NewNop())

		err := repo.Create(context.Background(), ticket)
		assert.ErrorIs(t, err, ErrDuplicateSeat)
	})

	t.Run("primary key violation stays an internal failure", func(t *testing.T) {
		db := &captureDB{execErr: &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "tickets_pkey",
		}}
		repo := NewTicketRepository(db, zap.NewNop())

		err := repo.Create(context.Background(), ticket)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicateSeat)
	})
}

func TestScreeningCreateBindsEntityIdentity(t *testing.T) {
	db := &captureDB{}
	repo := NewScreeningRepository(db, zap.NewNop())

	screening := &entity.Screening{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CinemaID:     uuid.New(),
		AuditoriumID: uuid.New(),
		MovieID:      uuid.New(),
		ShowDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    14,
		Type:         entity.ScreeningTypeScheduled,
		Pricing:      15,
		Language:     "English",
		CreatedBy:    uuid.New(),
	}

	require.NoError(t, repo.Create(context.Background(), screening))

	require.Len(t, db.args, 13)
	assert.Equal(t, screening.ID, db.args[0])
	assert.NotEqual(t, uuid.Nil, db.args[0])
}

func TestScreeningUpdateWritesVenueColumns(t *testing.T) {
	db := &captureDB{tag: "UPDATE 1"}
	repo := NewScreeningRepository(db, zap.NewNop())

	screening := &entity.Screening{
		Base: entity.Base{
			ID:        uuid.New(),
			UpdatedAt: time.Now(),
		},
		CinemaID:     uuid.New(),
		AuditoriumID: uuid.New(),
		MovieID:      uuid.New(),
		ShowDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    16,
		Type:         entity.ScreeningTypeScheduled,
		Pricing:      18,
		Language:     "English",
	}

	require.NoError(t, repo.Update(context.Background(), screening))

	// A moved screening must land in the auditorium the conflict check
	// validated, with the movie whose runtime it was checked against.
	assert.Contains(t, db.sql, "auditorium_id = $2")
	assert.Contains(t, db.sql, "movie_id = $3")
	require.Len(t, db.args, 10)
	assert.Equal(t, screening.ID, db.args[0])
	assert.Equal(t, screening.AuditoriumID, db.args[1])
	assert.Equal(t, screening.MovieID, db.args[2])
	assert.Equal(t, screening.ShowDate, db.args[3])
	assert.Equal(t, screening.StartTime, db.args[4])
}

func TestAuditoriumCreateMapsOnlyNumberConstraint(t *testing.T) {
	auditorium := &entity.Auditorium{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		CinemaID:   uuid.New(),
		Number:     1,
		Capacity:   200,
		Type:       entity.AuditoriumTypeStandard,
		SeatLayout: entity.SeatLayout{Rows: 10, SeatsPerRow: 20},
	}

	t.Run("number index violation is a duplicate auditorium", func(t *testing.T) {
		db := &captureDB{execErr: &pgconn.PgError{
			Code:           "23505",
			ConstraintName: constraintAuditoriumNumber,
		}}
		repo := NewAuditoriumRepository(db, zap.NewNop())

		err := repo.Create(context.Background(), auditorium)
		assert.ErrorIs(t, err, ErrDuplicateAuditorium)
	})

	t.Run("primary key violation stays an internal failure", func(t *testing.T) {
		db := &captureDB{execErr: &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "auditoriums_pkey",
		}}
		repo := NewAuditoriumRepository(db, zap.NewNop())

		err := repo.Create(context.Background(), auditorium)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicateAuditorium)
	})
}

func TestCinemaCreateBindsEntityIdentity(t *testing.T) {
	db := &captureDB{}
	repo := NewCinemaRepository(db, zap.NewNop())

	cinema := &entity.Cinema{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:    "Central",
		Address: "1 Main St",
		City:    "Springfield",
	}

	require.NoError(t, repo.Create(context.Background(), cinema))

	require.Len(t, db.args, 6)
	assert.Equal(t, cinema.ID, db.args[0])
	assert.NotEqual(t, uuid.Nil, db.args[0])
}
