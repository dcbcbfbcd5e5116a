package request

type MovieRequest struct {
	Title             string  `json:"title" validate:"required,min=1,max=200"`
	Description       *string `json:"description,omitempty"`
	PosterURL         *string `json:"poster_url,omitempty" validate:"omitempty,url"`
	Genre             string  `json:"genre" validate:"required,min=1,max=100"`
	ReleaseDate       string  `json:"release_date" validate:"required,datetime=2006-01-02"`
	DurationInMinutes int     `json:"duration_in_minutes" validate:"required,min=1,max=999"`
}

type MovieUpdateRequest struct {
	Title             *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description       *string `json:"description,omitempty"`
	PosterURL         *string `json:"poster_url,omitempty" validate:"omitempty,url"`
	Genre             *string `json:"genre,omitempty" validate:"omitempty,min=1,max=100"`
	ReleaseDate       *string `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DurationInMinutes *int    `json:"duration_in_minutes,omitempty" validate:"omitempty,min=1,max=999"`
}
