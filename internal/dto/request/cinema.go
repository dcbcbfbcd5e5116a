package request

type CinemaRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"required,min=1,max=500"`
	City    string `json:"city" validate:"required,min=1,max=100"`
}

type CinemaUpdateRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address,omitempty" validate:"omitempty,min=1,max=500"`
	City    *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
}

type AuditoriumRequest struct {
	Number      int    `json:"number" validate:"required,min=1"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Type        string `json:"type" validate:"required,oneof=Standard 4dx IMAX"`
	Rows        int    `json:"rows" validate:"required,min=1"`
	SeatsPerRow int    `json:"seats_per_row" validate:"required,min=1"`
	ScreenSize  string `json:"screen_size,omitempty"`
	SoundSystem string `json:"sound_system,omitempty"`
	Projection  string `json:"projection,omitempty"`
}

type AuditoriumUpdateRequest struct {
	Number      *int    `json:"number,omitempty" validate:"omitempty,min=1"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=Standard 4dx IMAX"`
	Rows        *int    `json:"rows,omitempty" validate:"omitempty,min=1"`
	SeatsPerRow *int    `json:"seats_per_row,omitempty" validate:"omitempty,min=1"`
	ScreenSize  *string `json:"screen_size,omitempty"`
	SoundSystem *string `json:"sound_system,omitempty"`
	Projection  *string `json:"projection,omitempty"`
}
