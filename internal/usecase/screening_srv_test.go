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

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newScreeningTestService(store *fakeStore) *screeningService {
	return &screeningService{
		repo: store.repository(),
		log:  zap.NewNop(),
		now:  func() time.Time { return testNow },
	}
}

func screeningReq(auditorium *entity.Auditorium, movie *entity.Movie, showDate string, startTime int, typ string) *request.ScreeningRequest {
	return &request.ScreeningRequest{
		CinemaID:     auditorium.CinemaID.String(),
		AuditoriumID: auditorium.ID.String(),
		MovieID:      movie.ID.String(),
		ShowDate:     showDate,
		StartTime:    startTime,
		Type:         typ,
		Pricing:      15,
		Language:     "English",
	}
}

func TestCreateScreeningConflicts(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newScreeningTestService(store)

	cinema := store.addCinema()
	auditorium := store.addAuditorium(cinema.ID, 10, 20)
	movie := store.addMovie(120) // blocks two hours
	showDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Existing screening occupies [14, 16).
	store.addScreening(auditorium, movie, showDate, 14, entity.ScreeningTypeScheduled)

	tests := []struct {
		name      string
		startTime int
		wantErr   error
	}{
		{"same start conflicts", 14, ErrSchedulingConflict},
		{"overlap from before conflicts", 13, ErrSchedulingConflict},
		{"overlap of last hour conflicts", 15, ErrSchedulingConflict},
		{"back to back after is allowed", 16, nil},
		{"back to back before is allowed", 12, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := screeningReq(auditorium, movie, "2025-06-10", tt.startTime, "Scheduled")
			resp, err := svc.CreateScreening(ctx, uuid.New(), req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.startTime, resp.StartTime)
			assert.NotEqual(t, uuid.Nil.String(), resp.ID)
		})
	}
}

func TestCreateScreeningDifferentAuditoriumsDoNotConflict(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newScreeningTestService(store)

	cinema := store.addCinema()
	auditoriumA := store.addAuditorium(cinema.ID, 10, 20)
	auditoriumB := store.addAuditorium(cinema.ID, 10, 20)
	movie := store.addMovie(120)
	showDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	store.addScreening(auditoriumA, movie, showDate, 14, entity.ScreeningTypeScheduled)

	req := screeningReq(auditoriumB, movie, "2025-06-10", 14, "Scheduled")
	_, err := svc.CreateScreening(ctx, uuid.New(), req)
	assert.NoError(t, err)
}

func TestCreateScreeningRecurringOccupiesEveryDate(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newScreeningTestService(store)

	cinema := store.addCinema()
	auditorium := store.addAuditorium(cinema.ID, 10, 20)
	movie := store.addMovie(90)

	// Recurring screening at [18, 20) regardless of date.
	store.addScreening(auditorium, movie,
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), 18, entity.ScreeningTypeRecurring)

	t.Run("scheduled candidate on another date still conflicts", func(t *testing.T) {
		req := screeningReq(auditorium, movie, "2025-07-20", 19, "Scheduled")
		_, err := svc.CreateScreening(ctx, uuid.New(), req)
		assert.ErrorIs(t, err, ErrSchedulingConflict)
	})

	t.Run("recurring candidate conflicts with any date's screening", func(t *testing.T) {
		other := store.addMovie(60)
		store.addScreening(auditorium, other,
			time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), 10, entity.ScreeningTypeScheduled)

		req := screeningReq(auditorium, other, "2025-06-10", 10, "Recurring")
		_, err := svc.CreateScreening(ctx, uuid.New(), req)
		assert.ErrorIs(t, err, ErrSchedulingConflict)
	})
}

func TestCreateScreeningPastDate(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newScreeningTestService(store)

	cinema := store.addCinema()
	auditorium := store.addAuditorium(cinema.ID, 10, 20)
	movie := store.addMovie(120)

	req := screeningReq(auditorium, movie, "2025-05-31", 14, "Scheduled")
	_, err := svc.CreateScreening(ctx, uuid.New(), req)
	assert.ErrorIs(t, err, ErrPastDate)

	// Today is fine.
	req = screeningReq(auditorium, movie, "2025-06-01", 14, "Scheduled")
	_, err = svc.CreateScreening(ctx, uuid.New(), req)
	assert.NoError(t, err)
}

func TestCreateScreeningAllowsEndPastMidnight(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newScreeningTestService(store)

	cinema := store.addCinema()
	auditorium := store.addAuditorium(cinema.ID, 10, 20)
	movie := store.addMovie(170) // rounds up to three hours

	req := screeningReq(auditorium, movie, "2025-06-10", 22, "Scheduled")
	resp, err := svc.CreateScreening(ctx, uuid.New(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.EndTime)
	assert.Equal(t, 25, *resp.EndTime)
}

func TestCreateScreeningStartTimeBounds(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newScreeningTestService(store)

	cinema := store.addCinema()
	auditorium := store.addAuditorium(cinema.ID, 10, 20)
	movie := store.addMovie(120)

	t.Run("hour 24 is a valid start", func(t *testing.T) {
		req := screeningReq(auditorium, movie, "2025-06-10", 24, "Scheduled")
		resp, err := svc.CreateScreening(ctx, uuid.New(), req)
		require.NoError(t, err)
		assert.Equal(t, 24, resp.StartTime)
	})

	t.Run("hour 25 is rejected", func(t *testing.T) {
		req := screeningReq(auditorium, movie, "2025-06-10", 25, "Scheduled")
		_, err := svc.CreateScreening(ctx, uuid.New(), req)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestCreateScreeningVenueValidation(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newScreeningTestService(store)

	cinema := store.addCinema()
	otherCinema := store.addCinema()
	auditorium := store.addAuditorium(otherCinema.ID, 10, 20)
	movie := store.addMovie(120)

	t.Run("auditorium of another cinema is not found", func(t *testing.T) {
		req := screeningReq(auditorium, movie, "2025-06-10", 14, "Scheduled")
		req.CinemaID = cinema.ID.String()
		_, err := svc.CreateScreening(ctx, uuid.New(), req)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown movie is not found", func(t *testing.T) {
		req := screeningReq(auditorium, movie, "2025-06-10", 14, "Scheduled")
		req.CinemaID = otherCinema.ID.String()
		req.MovieID = uuid.New().String()
		_, err := svc.CreateScreening(ctx, uuid.New(), req)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateScreeningExcludesItself(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newScreeningTestService(store)

	cinema := store.addCinema()
	auditorium := store.addAuditorium(cinema.ID, 10, 20)
	movie := store.addMovie(120)
	showDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	screening := store.addScreening(auditorium, movie, showDate, 14, entity.ScreeningTypeScheduled)
	store.addScreening(auditorium, movie, showDate, 18, entity.ScreeningTypeScheduled)

	t.Run("update keeping the same slot succeeds", func(t *testing.T) {
		pricing := 18.5
		resp, err := svc.UpdateScreening(ctx, screening.ID.String(), &request.ScreeningUpdateRequest{
			Pricing: &pricing,
		})
		require.NoError(t, err)
		assert.Equal(t, 18.5, resp.Pricing)
	})

	t.Run("nudging within its own old slot succeeds", func(t *testing.T) {
		startTime := 15
		_, err := svc.UpdateScreening(ctx, screening.ID.String(), &request.ScreeningUpdateRequest{
			StartTime: &startTime,
		})
		assert.NoError(t, err)
	})

	t.Run("moving onto a sibling screening conflicts", func(t *testing.T) {
		startTime := 17
		_, err := svc.UpdateScreening(ctx, screening.ID.String(), &request.ScreeningUpdateRequest{
			StartTime: &startTime,
		})
		assert.ErrorIs(t, err, ErrSchedulingConflict)
	})
}

func TestUpdateScreeningPersistsVenueMove(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newScreeningTestService(store)

	cinema := store.addCinema()
	auditorium := store.addAuditorium(cinema.ID, 10, 20)
	other := store.addAuditorium(cinema.ID, 8, 12)
	movie := store.addMovie(120)
	longerMovie := store.addMovie(150)
	showDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	screening := store.addScreening(auditorium, movie, showDate, 14, entity.ScreeningTypeScheduled)

	otherID := other.ID.String()
	movieID := longerMovie.ID.String()
	resp, err := svc.UpdateScreening(ctx, screening.ID.String(), &request.ScreeningUpdateRequest{
		AuditoriumID: &otherID,
		MovieID:      &movieID,
	})
	require.NoError(t, err)

	// The stored row must match what the response reports.
	stored := store.screenings[screening.ID]
	require.NotNil(t, stored)
	assert.Equal(t, other.ID, stored.AuditoriumID)
	assert.Equal(t, longerMovie.ID, stored.MovieID)
	assert.Equal(t, stored.AuditoriumID.String(), resp.AuditoriumID)
	assert.Equal(t, stored.MovieID.String(), resp.MovieID)
	require.NotNil(t, resp.EndTime)
	assert.Equal(t, 17, *resp.EndTime)
}
