package service

import (
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/ebeyer/lapwise/internal/repository"
)

// TopicService and StandardService cover the superuser-managed curriculum
// catalog. GroupService manages classroom membership.

type TopicService interface {
	Create(req dto.TopicCreateRequest) (*dto.TopicResponse, error)
	List(skip, limit int) ([]dto.TopicResponse, error)
}

type topicService struct {
	topicRepo repository.TopicRepository
}

func NewTopicService(topicRepo repository.TopicRepository) TopicService {
	return &topicService{topicRepo: topicRepo}
}

func (s *topicService) Create(req dto.TopicCreateRequest) (*dto.TopicResponse, error) {
	topic := model.Topic{Description: req.Description}
	if err := s.topicRepo.Create(&topic); err != nil {
		return nil, err
	}
	resp := toTopicResponse(&topic)
	return &resp, nil
}

func (s *topicService) List(skip, limit int) ([]dto.TopicResponse, error) {
	topics, err := s.topicRepo.List(skip, limit)
	if err != nil {
		return nil, err
	}
	resps := make([]dto.TopicResponse, 0, len(topics))
	for i := range topics {
		resps = append(resps, toTopicResponse(&topics[i]))
	}
	return resps, nil
}

type StandardService interface {
	Create(req dto.StandardCreateRequest) (*dto.StandardResponse, error)
	Get(id uint) (*dto.StandardResponse, error)
	List(skip, limit int) ([]dto.StandardResponse, error)
}

type standardService struct {
	standardRepo repository.StandardRepository
	topicRepo    repository.TopicRepository
}

func NewStandardService(standardRepo repository.StandardRepository, topicRepo repository.TopicRepository) StandardService {
	return &standardService{standardRepo: standardRepo, topicRepo: topicRepo}
}

func (s *standardService) Create(req dto.StandardCreateRequest) (*dto.StandardResponse, error) {
	topic, err := s.topicRepo.Get(req.TopicID)
	if err != nil {
		return nil, err
	}
	standard := model.Standard{
		TopicID:  topic.ID,
		Template: req.Template,
		Grade:    req.Grade,
		Subject:  model.Subject(req.Subject),
	}
	if err := s.standardRepo.Create(&standard); err != nil {
		return nil, err
	}
	standard.Topic = *topic
	resp := toStandardResponse(&standard)
	return &resp, nil
}

func (s *standardService) Get(id uint) (*dto.StandardResponse, error) {
	standard, err := s.standardRepo.Get(id)
	if err != nil {
		return nil, err
	}
	resp := toStandardResponse(standard)
	return &resp, nil
}

func (s *standardService) List(skip, limit int) ([]dto.StandardResponse, error) {
	standards, err := s.standardRepo.List(skip, limit)
	if err != nil {
		return nil, err
	}
	resps := make([]dto.StandardResponse, 0, len(standards))
	for i := range standards {
		resps = append(resps, toStandardResponse(&standards[i]))
	}
	return resps, nil
}

type GroupService interface {
	Create(req dto.GroupCreateRequest) (*dto.GroupResponse, error)
	AddMember(req dto.GroupMemberRequest) error
}

type groupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository) GroupService {
	return &groupService{groupRepo: groupRepo, userRepo: userRepo}
}

func (s *groupService) Create(req dto.GroupCreateRequest) (*dto.GroupResponse, error) {
	group := model.Group{Label: req.Label}
	if err := s.groupRepo.Create(&group); err != nil {
		return nil, err
	}
	return &dto.GroupResponse{ID: group.ID, Label: group.Label}, nil
}

func (s *groupService) AddMember(req dto.GroupMemberRequest) error {
	if _, err := s.groupRepo.Get(req.GroupID); err != nil {
		return err
	}
	if _, err := s.userRepo.Get(req.UserID); err != nil {
		return err
	}
	return s.groupRepo.AddMember(req.GroupID, req.UserID)
}
