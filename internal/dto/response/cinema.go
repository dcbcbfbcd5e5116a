package response

import (
	"time"

	"cinema-platform/internal/data/entity"
)

type CinemaResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type SeatLayoutResponse struct {
	Rows        int `json:"rows"`
	SeatsPerRow int `json:"seats_per_row"`
}

type AuditoriumResponse struct {
	ID          string             `json:"id"`
	CinemaID    string             `json:"cinema_id"`
	Number      int                `json:"number"`
	Capacity    int                `json:"capacity"`
	Type        string             `json:"type"`
	SeatLayout  SeatLayoutResponse `json:"seat_layout"`
	ScreenSize  string             `json:"screen_size,omitempty"`
	SoundSystem string             `json:"sound_system,omitempty"`
	Projection  string             `json:"projection,omitempty"`
}

func CinemaToResponse(cinema *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		ID:        cinema.ID.String(),
		Name:      cinema.Name,
		Address:   cinema.Address,
		City:      cinema.City,
		CreatedAt: cinema.CreatedAt,
	}
}

func AuditoriumToResponse(auditorium *entity.Auditorium) AuditoriumResponse {
	return AuditoriumResponse{
		ID:       auditorium.ID.String(),
		CinemaID: auditorium.CinemaID.String(),
		Number:   auditorium.Number,
		Capacity: auditorium.Capacity,
		Type:     string(auditorium.Type),
		SeatLayout: SeatLayoutResponse{
			Rows:        auditorium.SeatLayout.Rows,
			SeatsPerRow: auditorium.SeatLayout.SeatsPerRow,
		},
		ScreenSize:  auditorium.ScreenSize,
		SoundSystem: auditorium.SoundSystem,
		Projection:  auditorium.Projection,
	}
}
