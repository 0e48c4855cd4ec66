package service

import (
	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/ebeyer/lapwise/internal/repository"
)

type AttemptService interface {
	Create(actor *model.User, req dto.AttemptCreateRequest) (*dto.AttemptWithLapResponse, error)
}

type attemptService struct {
	attemptRepo repository.AttemptRepository
	lapRepo     repository.LapRepository
	cardRepo    repository.CardRepository
	goalRepo    repository.GoalRepository
}

func NewAttemptService(
	attemptRepo repository.AttemptRepository,
	lapRepo repository.LapRepository,
	cardRepo repository.CardRepository,
	goalRepo repository.GoalRepository,
) AttemptService {
	return &attemptService{
		attemptRepo: attemptRepo,
		lapRepo:     lapRepo,
		cardRepo:    cardRepo,
		goalRepo:    goalRepo,
	}
}

// Create grades a submission against the card's answer and records the
// result. Correct is set here, once; it is never recomputed.
func (s *attemptService) Create(actor *model.User, req dto.AttemptCreateRequest) (*dto.AttemptWithLapResponse, error) {
	lap, err := s.lapRepo.Get(req.LapID)
	if err != nil {
		return nil, err
	}
	card, err := s.cardRepo.Get(req.CardID)
	if err != nil {
		return nil, err
	}
	goal, err := s.goalRepo.Get(lap.GoalID)
	if err != nil {
		return nil, err
	}
	if actor.ID != goal.StudentID {
		return nil, apperr.Forbiddenf("Not a member of Goal %d", goal.ID)
	}

	attempt := model.Attempt{
		LapID:      lap.ID,
		CardID:     card.ID,
		Submission: req.Submission,
		Correct:    IsCorrect(req.Submission, card.Answer),
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		return nil, err
	}
	return &dto.AttemptWithLapResponse{
		AttemptResponse: dto.AttemptResponse{
			Submission: attempt.Submission,
			Correct:    attempt.Correct,
			Card:       toCardResponse(card),
		},
		Lap: toLapMinimal(lap),
	}, nil
}
