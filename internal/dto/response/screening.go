package response

import (
	"time"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/schedule"
)

type ScreeningResponse struct {
	ID           string    `json:"id"`
	CinemaID     string    `json:"cinema_id"`
	AuditoriumID string    `json:"auditorium_id"`
	MovieID      string    `json:"movie_id"`
	ShowDate     string    `json:"show_date"`
	StartTime    int       `json:"start_time"`
	EndTime      *int      `json:"end_time,omitempty"`
	Type         string    `json:"type"`
	Pricing      float64   `json:"pricing"`
	Language     string    `json:"language"`
	Subtitle     string    `json:"subtitle,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

func ScreeningToResponse(screening *entity.Screening) ScreeningResponse {
	return ScreeningResponse{
		ID:           screening.ID.String(),
		CinemaID:     screening.CinemaID.String(),
		AuditoriumID: screening.AuditoriumID.String(),
		MovieID:      screening.MovieID.String(),
		ShowDate:     screening.ShowDate.Format(schedule.DateLayout),
		StartTime:    screening.StartTime,
		Type:         string(screening.Type),
		Pricing:      screening.Pricing,
		Language:     screening.Language,
		Subtitle:     screening.Subtitle,
		CreatedAt:    screening.CreatedAt,
	}
}

// ScreeningToDetailResponse includes the computed end hour. The end may
// exceed 24 when a late showing runs past midnight.
func ScreeningToDetailResponse(screening *entity.Screening, durationMinutes int) ScreeningResponse {
	resp := ScreeningToResponse(screening)
	end := screening.StartTime + schedule.DurationHours(durationMinutes)
	resp.EndTime = &end
	return resp
}
