package usecase

import (
	"cinema-platform/internal/data/repository"
	"cinema-platform/pkg/payment"
	"cinema-platform/pkg/queue"
	"cinema-platform/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Cinema    CinemaService
	Movie     MovieService
	Screening ScreeningService
	Ticket    TicketService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	payments *payment.Client,
	events *queue.Publisher,
	log *zap.Logger,
) *Service {
	return &Service{
		Cinema:    NewCinemaService(repo, log),
		Movie:     NewMovieService(repo, log),
		Screening: NewScreeningService(repo, log),
		Ticket:    NewTicketService(repo, config, payments, events, log),
	}
}
