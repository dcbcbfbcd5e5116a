package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/schedule"

	"github.com/google/uuid"
)

// pkeyViolation mimics what Postgres returns when an insert reuses a
// primary key. The fakes raise it so a service that forgets to assign
// entity IDs fails here the same way it would against the real table.
func pkeyViolation(table string) error {
	return fmt.Errorf("ERROR: duplicate key value violates unique constraint %q (SQLSTATE 23505)", table+"_pkey")
}

// fakeStore is a mutex-guarded in-memory stand-in for the database. The
// ticket table enforces the same (screening, row, number) uniqueness the
// real unique index does, so the concurrency contracts can be tested
// without Postgres.
type fakeStore struct {
	mu          sync.Mutex
	cinemas     map[uuid.UUID]*entity.Cinema
	auditoriums map[uuid.UUID]*entity.Auditorium
	movies      map[uuid.UUID]*entity.Movie
	screenings  map[uuid.UUID]*entity.Screening
	tickets     map[uuid.UUID]*entity.Ticket
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cinemas:     make(map[uuid.UUID]*entity.Cinema),
		auditoriums: make(map[uuid.UUID]*entity.Auditorium),
		movies:      make(map[uuid.UUID]*entity.Movie),
		screenings:  make(map[uuid.UUID]*entity.Screening),
		tickets:     make(map[uuid.UUID]*entity.Ticket),
	}
}

func (f *fakeStore) repository() *repository.Repository {
	return &repository.Repository{
		Cinema:     &fakeCinemaRepo{f},
		Auditorium: &fakeAuditoriumRepo{f},
		Movie:      &fakeMovieRepo{f},
		Screening:  &fakeScreeningRepo{f},
		Ticket:     &fakeTicketRepo{f},
	}
}

func (f *fakeStore) addCinema() *entity.Cinema {
	f.mu.Lock()
	defer f.mu.Unlock()
	cinema := &entity.Cinema{Name: "Central", Address: "1 Main St", City: "Springfield"}
	cinema.ID = uuid.New()
	f.cinemas[cinema.ID] = cinema
	return cinema
}

func (f *fakeStore) addAuditorium(cinemaID uuid.UUID, rows, seatsPerRow int) *entity.Auditorium {
	f.mu.Lock()
	defer f.mu.Unlock()
	auditorium := &entity.Auditorium{
		CinemaID:   cinemaID,
		Number:     len(f.auditoriums) + 1,
		Capacity:   rows * seatsPerRow,
		Type:       entity.AuditoriumTypeStandard,
		SeatLayout: entity.SeatLayout{Rows: rows, SeatsPerRow: seatsPerRow},
	}
	auditorium.ID = uuid.New()
	f.auditoriums[auditorium.ID] = auditorium
	return auditorium
}

func (f *fakeStore) addMovie(durationMinutes int) *entity.Movie {
	f.mu.Lock()
	defer f.mu.Unlock()
	movie := &entity.Movie{
		Title:             "Some Movie",
		Genre:             "Drama",
		ReleaseDate:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DurationInMinutes: durationMinutes,
	}
	movie.ID = uuid.New()
	f.movies[movie.ID] = movie
	return movie
}

func (f *fakeStore) addScreening(auditorium *entity.Auditorium, movie *entity.Movie, showDate time.Time, startTime int, typ entity.ScreeningType) *entity.Screening {
	f.mu.Lock()
	defer f.mu.Unlock()
	screening := &entity.Screening{
		CinemaID:     auditorium.CinemaID,
		AuditoriumID: auditorium.ID,
		MovieID:      movie.ID,
		ShowDate:     schedule.UTCMidnight(showDate),
		StartTime:    startTime,
		Type:         typ,
		Pricing:      15,
		Language:     "English",
	}
	screening.ID = uuid.New()
	f.screenings[screening.ID] = screening
	return screening
}

type fakeCinemaRepo struct{ store *fakeStore }

func (r *fakeCinemaRepo) Create(ctx context.Context, cinema *entity.Cinema) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.cinemas[cinema.ID]; exists {
		return pkeyViolation("cinemas")
	}
	r.store.cinemas[cinema.ID] = cinema
	return nil
}

func (r *fakeCinemaRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.cinemas[id], nil
}

func (r *fakeCinemaRepo) FindAll(ctx context.Context, limit, offset int, cityFilter *string) ([]*entity.Cinema, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Cinema
	for _, c := range r.store.cinemas {
		if cityFilter == nil || c.City == *cityFilter {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCinemaRepo) CountAll(ctx context.Context, cityFilter *string) (int64, error) {
	all, _ := r.FindAll(ctx, 0, 0, cityFilter)
	return int64(len(all)), nil
}

func (r *fakeCinemaRepo) Update(ctx context.Context, cinema *entity.Cinema) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.cinemas[cinema.ID] = cinema
	return nil
}

func (r *fakeCinemaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.cinemas, id)
	return nil
}

type fakeAuditoriumRepo struct{ store *fakeStore }

func (r *fakeAuditoriumRepo) Create(ctx context.Context, auditorium *entity.Auditorium) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.auditoriums {
		if a.CinemaID == auditorium.CinemaID && a.Number == auditorium.Number {
			return repository.ErrDuplicateAuditorium
		}
	}
	if _, exists := r.store.auditoriums[auditorium.ID]; exists {
		return pkeyViolation("auditoriums")
	}
	r.store.auditoriums[auditorium.ID] = auditorium
	return nil
}

func (r *fakeAuditoriumRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Auditorium, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.auditoriums[id], nil
}

func (r *fakeAuditoriumRepo) FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Auditorium, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Auditorium
	for _, a := range r.store.auditoriums {
		if a.CinemaID == cinemaID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAuditoriumRepo) Update(ctx context.Context, auditorium *entity.Auditorium) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.auditoriums[auditorium.ID] = auditorium
	return nil
}

func (r *fakeAuditoriumRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.auditoriums, id)
	return nil
}

type fakeMovieRepo struct{ store *fakeStore }

func (r *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.movies[movie.ID]; exists {
		return pkeyViolation("movies")
	}
	r.store.movies[movie.ID] = movie
	return nil
}

func (r *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.movies[id], nil
}

func (r *fakeMovieRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Movie
	for _, m := range r.store.movies {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMovieRepo) CountAll(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.movies)), nil
}

func (r *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.movies[movie.ID] = movie
	return nil
}

func (r *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.movies, id)
	return nil
}

type fakeScreeningRepo struct{ store *fakeStore }

func (r *fakeScreeningRepo) Create(ctx context.Context, screening *entity.Screening) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.screenings[screening.ID]; exists {
		return pkeyViolation("screenings")
	}
	r.store.screenings[screening.ID] = screening
	return nil
}

func (r *fakeScreeningRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.screenings[id], nil
}

func (r *fakeScreeningRepo) FindByCinemaAndDate(ctx context.Context, cinemaID uuid.UUID, date time.Time) ([]*entity.Screening, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Screening
	for _, s := range r.store.screenings {
		if s.CinemaID == cinemaID && (s.ShowDate.Equal(date) || s.IsRecurring()) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScreeningRepo) FindByAuditoriumAndDate(ctx context.Context, auditoriumID uuid.UUID, date time.Time) ([]*entity.Screening, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Screening
	for _, s := range r.store.screenings {
		if s.AuditoriumID == auditoriumID && (s.ShowDate.Equal(date) || s.IsRecurring()) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScreeningRepo) FindSlotsForConflict(ctx context.Context, auditoriumID uuid.UUID, date time.Time, excludeID uuid.UUID) ([]schedule.Slot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []schedule.Slot
	for _, s := range r.store.screenings {
		if s.AuditoriumID != auditoriumID || s.ID == excludeID {
			continue
		}
		if !s.ShowDate.Equal(date) && !s.IsRecurring() {
			continue
		}
		out = append(out, r.slot(s))
	}
	return out, nil
}

func (r *fakeScreeningRepo) FindAllSlots(ctx context.Context, auditoriumID uuid.UUID, excludeID uuid.UUID) ([]schedule.Slot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []schedule.Slot
	for _, s := range r.store.screenings {
		if s.AuditoriumID != auditoriumID || s.ID == excludeID {
			continue
		}
		out = append(out, r.slot(s))
	}
	return out, nil
}

func (r *fakeScreeningRepo) slot(s *entity.Screening) schedule.Slot {
	duration := 0
	if movie, ok := r.store.movies[s.MovieID]; ok {
		duration = movie.DurationInMinutes
	}
	return schedule.Slot{ID: s.ID, StartTime: s.StartTime, DurationMinutes: duration}
}

func (r *fakeScreeningRepo) Update(ctx context.Context, screening *entity.Screening) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.screenings[screening.ID] = screening
	return nil
}

func (r *fakeScreeningRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.screenings, id)
	return nil
}

type fakeTicketRepo struct{ store *fakeStore }

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *entity.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.tickets {
		if t.ScreeningID == ticket.ScreeningID &&
			t.Seat.Row == ticket.Seat.Row &&
			t.Seat.Number == ticket.Seat.Number {
			return repository.ErrDuplicateSeat
		}
	}
	if _, exists := r.store.tickets[ticket.ID]; exists {
		return pkeyViolation("tickets")
	}
	r.store.tickets[ticket.ID] = ticket
	return nil
}

func (r *fakeTicketRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.tickets[id], nil
}

func (r *fakeTicketRepo) FindByScreeningID(ctx context.Context, screeningID uuid.UUID) ([]*entity.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Ticket
	for _, t := range r.store.tickets {
		if t.ScreeningID == screeningID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Ticket
	for _, t := range r.store.tickets {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	all, _ := r.FindByCustomerID(ctx, customerID, 0, 0)
	return int64(len(all)), nil
}

func (r *fakeTicketRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.tickets, id)
	return nil
}
