package request

type ScreeningRequest struct {
	CinemaID     string  `json:"cinema_id" validate:"required,uuid4"`
	AuditoriumID string  `json:"auditorium_id" validate:"required,uuid4"`
	MovieID      string  `json:"movie_id" validate:"required,uuid4"`
	ShowDate     string  `json:"show_date" validate:"required,datetime=2006-01-02"`
	StartTime    int     `json:"start_time" validate:"gte=0,lte=24"`
	Type         string  `json:"type" validate:"required,oneof=Scheduled Recurring"`
	Pricing      float64 `json:"pricing" validate:"required,gt=0"`
	Language     string  `json:"language" validate:"required,min=1,max=50"`
	Subtitle     string  `json:"subtitle,omitempty" validate:"omitempty,max=50"`
}

type ScreeningUpdateRequest struct {
	AuditoriumID *string  `json:"auditorium_id,omitempty" validate:"omitempty,uuid4"`
	MovieID      *string  `json:"movie_id,omitempty" validate:"omitempty,uuid4"`
	ShowDate     *string  `json:"show_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime    *int     `json:"start_time,omitempty" validate:"omitempty,gte=0,lte=24"`
	Type         *string  `json:"type,omitempty" validate:"omitempty,oneof=Scheduled Recurring"`
	Pricing      *float64 `json:"pricing,omitempty" validate:"omitempty,gt=0"`
	Language     *string  `json:"language,omitempty" validate:"omitempty,min=1,max=50"`
	Subtitle     *string  `json:"subtitle,omitempty" validate:"omitempty,max=50"`
}
