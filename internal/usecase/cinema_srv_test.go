package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCinemaTestService(store *fakeStore) *cinemaService {
	return &cinemaService{
		repo: store.repository(),
		log:  zap.NewNop(),
		now:  func() time.Time { return testNow },
	}
}

func TestCreateCinemaAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newCinemaTestService(store)

	first, err := svc.CreateCinema(ctx, &request.CinemaRequest{
		Name: "Central", Address: "1 Main St", City: "Springfield",
	})
	require.NoError(t, err)

	second, err := svc.CreateCinema(ctx, &request.CinemaRequest{
		Name: "Grand", Address: "2 Side St", City: "Springfield",
	})
	require.NoError(t, err)

	firstID, err := uuid.Parse(first.ID)
	require.NoError(t, err)
	secondID, err := uuid.Parse(second.ID)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, firstID)
	assert.NotEqual(t, uuid.Nil, secondID)
	assert.NotEqual(t, firstID, secondID)
	assert.Equal(t, testNow, first.CreatedAt)
	assert.Len(t, store.cinemas, 2)
}

func TestCreateAuditoriumAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newCinemaTestService(store)

	cinema := store.addCinema()

	resp, err := svc.CreateAuditorium(ctx, cinema.ID.String(), &request.AuditoriumRequest{
		Number: 7, Capacity: 200, Type: "Standard", Rows: 10, SeatsPerRow: 20,
	})
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	stored := store.auditoriums[id]
	require.NotNil(t, stored)
	assert.Equal(t, 7, stored.Number)
}

func TestGetScreeningsForDatePastDates(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newCinemaTestService(store)

	cinema := store.addCinema()
	auditorium := store.addAuditorium(cinema.ID, 10, 20)
	movie := store.addMovie(120)
	store.addScreening(auditorium, movie,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 14, entity.ScreeningTypeScheduled)

	t.Run("yesterday is rejected", func(t *testing.T) {
		_, err := svc.GetScreeningsForDate(ctx, cinema.ID.String(), "2025-05-31")
		assert.ErrorIs(t, err, ErrPastDate)
	})

	t.Run("today is served", func(t *testing.T) {
		screenings, err := svc.GetScreeningsForDate(ctx, cinema.ID.String(), "2025-06-01")
		require.NoError(t, err)
		assert.Len(t, screenings, 1)
	})

	t.Run("garbage date is a validation error", func(t *testing.T) {
		_, err := svc.GetScreeningsForDate(ctx, cinema.ID.String(), "June 1st")
		assert.ErrorIs(t, err, ErrValidation)
	})
}
