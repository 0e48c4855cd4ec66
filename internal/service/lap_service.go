package service

import (
	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/ebeyer/lapwise/internal/repository"
)

type LapService interface {
	Create(actor *model.User, req dto.LapCreateRequest) (*dto.LapResponse, error)
	Get(actor *model.User, id uint) (*dto.LapWithAttemptsResponse, error)
	Update(actor *model.User, id uint, req dto.LapUpdateRequest) (*dto.LapMinimalResponse, error)
}

type lapService struct {
	lapRepo      repository.LapRepository
	goalRepo     repository.GoalRepository
	resourceRepo repository.ResourceRepository
}

func NewLapService(
	lapRepo repository.LapRepository,
	goalRepo repository.GoalRepository,
	resourceRepo repository.ResourceRepository,
) LapService {
	return &lapService{lapRepo: lapRepo, goalRepo: goalRepo, resourceRepo: resourceRepo}
}

// Create starts a practice session. Only the goal's own student may run laps,
// and only against a resource already linked to the goal.
func (s *lapService) Create(actor *model.User, req dto.LapCreateRequest) (*dto.LapResponse, error) {
	goal, err := s.goalRepo.Get(req.GoalID)
	if err != nil {
		return nil, err
	}
	resource, err := s.resourceRepo.Get(req.ResourceID)
	if err != nil {
		return nil, err
	}
	if actor.ID != goal.StudentID {
		return nil, apperr.Forbiddenf("Not a member of Goal %d.", goal.ID)
	}
	linked, err := s.goalRepo.HasLink(goal.ID, resource.ID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, apperr.NotFoundf("Link between Goal %d and Resource %d not found", goal.ID, resource.ID)
	}

	lap := model.Lap{GoalID: goal.ID, ResourceID: resource.ID}
	if err := s.lapRepo.Create(&lap); err != nil {
		return nil, err
	}
	cards, err := s.resourceRepo.Cards(resource.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LapResponse{
		ID:       lap.ID,
		StartTS:  lap.StartTS,
		EndTS:    lap.EndTS,
		Score:    lap.Score,
		Goal:     toGoalResponse(goal),
		Resource: toResourceWithCards(resource, cards),
	}, nil
}

// Get is restricted to the teacher and student of the lap's goal.
func (s *lapService) Get(actor *model.User, id uint) (*dto.LapWithAttemptsResponse, error) {
	lap, err := s.lapRepo.GetWithAttempts(id)
	if err != nil {
		return nil, err
	}
	goal, err := s.goalRepo.Get(lap.GoalID)
	if err != nil {
		return nil, err
	}
	if actor.ID != goal.StudentID && actor.ID != goal.TeacherID {
		return nil, apperr.Forbiddenf("Not a member of associated Goal.")
	}
	resource, err := s.resourceRepo.Get(lap.ResourceID)
	if err != nil {
		return nil, err
	}
	cards, err := s.resourceRepo.Cards(resource.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.LapWithAttemptsResponse{
		LapResponse: dto.LapResponse{
			ID:       lap.ID,
			StartTS:  lap.StartTS,
			EndTS:    lap.EndTS,
			Score:    lap.Score,
			Goal:     toGoalResponse(goal),
			Resource: toResourceWithCards(resource, cards),
		},
		Attempts: make([]dto.AttemptResponse, 0, len(lap.Attempts)),
	}
	for i := range lap.Attempts {
		att := &lap.Attempts[i]
		resp.Attempts = append(resp.Attempts, dto.AttemptResponse{
			Submission: att.Submission,
			Correct:    att.Correct,
			Card:       toCardResponse(&att.Card),
		})
	}
	return &resp, nil
}

// Update lets the goal's student close out a lap with an end timestamp and
// score. Attempts themselves are immutable.
func (s *lapService) Update(actor *model.User, id uint, req dto.LapUpdateRequest) (*dto.LapMinimalResponse, error) {
	lap, err := s.lapRepo.Get(id)
	if err != nil {
		return nil, err
	}
	goal, err := s.goalRepo.Get(lap.GoalID)
	if err != nil {
		return nil, err
	}
	if actor.ID != goal.StudentID {
		return nil, apperr.Forbiddenf("Not a member of Goal %d.", goal.ID)
	}
	fields := map[string]any{}
	if req.EndTS != nil {
		fields["end_ts"] = *req.EndTS
	}
	if req.Score != nil {
		fields["score"] = *req.Score
	}
	if err := s.lapRepo.Update(lap, fields); err != nil {
		return nil, err
	}
	resp := toLapMinimal(lap)
	return &resp, nil
}
