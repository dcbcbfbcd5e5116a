package request

import "cinema-platform/pkg/utils"

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// NewPaginatedRequest builds pagination from raw query values, falling back
// to page 1 / 10 per page on anything unparseable.
func NewPaginatedRequest(page, perPage string) PaginatedRequest {
	pp := utils.ParseInt(perPage, defaultPerPage)
	if pp > maxPerPage {
		pp = maxPerPage
	}
	return PaginatedRequest{
		Page:    utils.ParseInt(page, 1),
		PerPage: pp,
	}
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return defaultPerPage
	}
	if p.PerPage > maxPerPage {
		return maxPerPage
	}
	return p.PerPage
}
