package service

import (
	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/ebeyer/lapwise/internal/repository"
)

type CardService interface {
	Create(actor *model.User, req dto.CardCreateRequest) (*dto.CardWithResourceResponse, error)
	CreateBatch(actor *model.User, reqs []dto.CardCreateRequest) (*dto.ResourceWithCardsResponse, error)
	Get(actor *model.User, id uint) (*dto.CardWithResourceResponse, error)
	ByResource(actor *model.User, resourceID uint) (*dto.ResourceWithCardsResponse, error)
	Update(actor *model.User, id uint, req dto.CardUpdateRequest) (*dto.CardWithResourceResponse, error)
}

type cardService struct {
	cardRepo     repository.CardRepository
	resourceRepo repository.ResourceRepository
}

func NewCardService(cardRepo repository.CardRepository, resourceRepo repository.ResourceRepository) CardService {
	return &cardService{cardRepo: cardRepo, resourceRepo: resourceRepo}
}

func (s *cardService) Create(actor *model.User, req dto.CardCreateRequest) (*dto.CardWithResourceResponse, error) {
	resource, err := s.resourceRepo.Get(req.ResourceID)
	if err != nil {
		return nil, err
	}
	if resource.CreatorID != actor.ID {
		return nil, apperr.Forbiddenf("Not creator of Resource with ID %d.", resource.ID)
	}
	card := model.Card{
		ResourceID: resource.ID,
		Question:   req.Question,
		Answer:     req.Answer,
	}
	if err := s.cardRepo.Create(&card); err != nil {
		return nil, err
	}
	return &dto.CardWithResourceResponse{
		CardResponse: toCardResponse(&card),
		Resource:     toResourceResponse(resource),
	}, nil
}

// CreateBatch accepts several cards for a single resource and returns the
// resource with its full card set. This is the second card-creation
// contract; the single-card form above returns the card instead.
func (s *cardService) CreateBatch(actor *model.User, reqs []dto.CardCreateRequest) (*dto.ResourceWithCardsResponse, error) {
	if len(reqs) == 0 {
		return nil, apperr.BadRequest("At least one card is required")
	}
	resourceID := reqs[0].ResourceID
	for _, req := range reqs {
		if req.ResourceID != resourceID {
			return nil, apperr.BadRequest("All cards must belong to the same resource")
		}
	}
	resource, err := s.resourceRepo.Get(resourceID)
	if err != nil {
		return nil, err
	}
	if resource.CreatorID != actor.ID {
		return nil, apperr.Forbiddenf("Not creator of Resource with ID %d.", resource.ID)
	}
	cards := make([]model.Card, 0, len(reqs))
	for _, req := range reqs {
		cards = append(cards, model.Card{
			ResourceID: resourceID,
			Question:   req.Question,
			Answer:     req.Answer,
		})
	}
	if err := s.cardRepo.CreateMany(cards); err != nil {
		return nil, err
	}
	all, err := s.resourceRepo.Cards(resourceID)
	if err != nil {
		return nil, err
	}
	resp := toResourceWithCards(resource, all)
	return &resp, nil
}

func (s *cardService) Get(actor *model.User, id uint) (*dto.CardWithResourceResponse, error) {
	card, err := s.cardRepo.GetWithResource(id)
	if err != nil {
		return nil, err
	}
	if card.Resource.Private && card.Resource.CreatorID != actor.ID {
		return nil, apperr.Forbiddenf("Not creator of Resource for Card %d.", id)
	}
	return &dto.CardWithResourceResponse{
		CardResponse: toCardResponse(card),
		Resource:     toResourceResponse(&card.Resource),
	}, nil
}

func (s *cardService) ByResource(actor *model.User, resourceID uint) (*dto.ResourceWithCardsResponse, error) {
	resource, err := s.resourceRepo.Get(resourceID)
	if err != nil {
		return nil, err
	}
	if resource.Private && resource.CreatorID != actor.ID {
		return nil, apperr.Forbiddenf("Not creator of Resource with ID %d.", resourceID)
	}
	cards, err := s.resourceRepo.Cards(resourceID)
	if err != nil {
		return nil, err
	}
	resp := toResourceWithCards(resource, cards)
	return &resp, nil
}

func (s *cardService) Update(actor *model.User, id uint, req dto.CardUpdateRequest) (*dto.CardWithResourceResponse, error) {
	card, err := s.cardRepo.GetWithResource(id)
	if err != nil {
		return nil, err
	}
	if card.Resource.CreatorID != actor.ID {
		return nil, apperr.Forbiddenf("Not creator of Resource for Card with ID %d.", id)
	}
	fields := map[string]any{}
	if req.Question != nil {
		fields["question"] = *req.Question
	}
	if req.Answer != nil {
		fields["answer"] = *req.Answer
	}
	if err := s.cardRepo.Update(card, fields); err != nil {
		return nil, err
	}
	return &dto.CardWithResourceResponse{
		CardResponse: toCardResponse(card),
		Resource:     toResourceResponse(&card.Resource),
	}, nil
}
