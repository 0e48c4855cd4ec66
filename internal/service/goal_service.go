package service

import (
	"errors"
	"time"

	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/ebeyer/lapwise/internal/repository"
)

type GoalService interface {
	Create(actor *model.User, req dto.GoalCreateRequest) (*dto.GoalWithResourcesResponse, error)
	Get(actor *model.User, id uint) (*dto.GoalWithResourcesResponse, error)
	Delete(actor *model.User, id uint) error
	LinkResource(actor *model.User, req dto.GoalResourceLinkRequest) (*dto.GoalWithResourcesResponse, error)
	LinkResources(actor *model.User, req dto.GoalResourceMultiLinkRequest) (*dto.GoalWithResourcesResponse, error)
}

type goalService struct {
	goalRepo     repository.GoalRepository
	resourceRepo repository.ResourceRepository
	standardRepo repository.StandardRepository
	userRepo     repository.UserRepository
	groupRepo    repository.GroupRepository
}

func NewGoalService(
	goalRepo repository.GoalRepository,
	resourceRepo repository.ResourceRepository,
	standardRepo repository.StandardRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
) GoalService {
	return &goalService{
		goalRepo:     goalRepo,
		resourceRepo: resourceRepo,
		standardRepo: standardRepo,
		userRepo:     userRepo,
		groupRepo:    groupRepo,
	}
}

// Create assigns a standard to a student. The actor must hold the teacher
// role, the designated student must hold the student role, and both must
// already be members of the given group. Membership is checked here only;
// the group is not stored on the goal.
func (s *goalService) Create(actor *model.User, req dto.GoalCreateRequest) (*dto.GoalWithResourcesResponse, error) {
	student, err := s.userRepo.Get(req.StudentID)
	if err != nil {
		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			return nil, apperr.NotFoundf("Student with ID %d not found", req.StudentID)
		}
		return nil, err
	}
	group, err := s.groupRepo.Get(req.GroupID)
	if err != nil {
		return nil, err
	}
	standard, err := s.standardRepo.Get(req.StandardID)
	if err != nil {
		return nil, err
	}

	if student.Role != model.RoleStudent {
		return nil, apperr.Validationf("student_id", "User with ID %d is not Student", req.StudentID)
	}
	teacherIn, err := s.groupRepo.HasMember(group.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	if !teacherIn {
		return nil, apperr.Forbiddenf("Teacher is not in Group %d", group.ID)
	}
	studentIn, err := s.groupRepo.HasMember(group.ID, student.ID)
	if err != nil {
		return nil, err
	}
	if !studentIn {
		return nil, apperr.Forbiddenf("Student is not in Group %d", group.ID)
	}

	if !req.EndDate.After(time.Now()) {
		return nil, apperr.Validation("end_date", "end_date must be in the future")
	}
	if req.Accuracy != nil && (*req.Accuracy <= 0 || *req.Accuracy > 100) {
		return nil, apperr.Validation("accuracy", "accuracy must be in (0, 100]")
	}
	if req.NTrials != nil && *req.NTrials <= 0 {
		return nil, apperr.Validation("n_trials", "n_trials must be positive")
	}

	goal := model.Goal{
		TeacherID:  actor.ID,
		StudentID:  student.ID,
		StandardID: standard.ID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Accuracy:   req.Accuracy,
		NTrials:    req.NTrials,
	}
	if err := s.goalRepo.Create(&goal); err != nil {
		return nil, err
	}
	goal.Teacher = *actor
	goal.Student = *student
	goal.Standard = *standard
	return &dto.GoalWithResourcesResponse{
		GoalResponse: toGoalResponse(&goal),
		Resources:    []dto.ResourceWithCardsResponse{},
	}, nil
}

// Get is restricted to the goal's teacher and student.
func (s *goalService) Get(actor *model.User, id uint) (*dto.GoalWithResourcesResponse, error) {
	goal, err := s.goalRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if actor.ID != goal.TeacherID && actor.ID != goal.StudentID {
		return nil, apperr.Forbiddenf("Not a member of Goal with ID %d", id)
	}
	return s.goalWithResources(goal)
}

// Delete refuses while any lap exists on the goal's resource links.
func (s *goalService) Delete(actor *model.User, id uint) error {
	goal, err := s.goalRepo.Get(id)
	if err != nil {
		return err
	}
	if actor.ID != goal.TeacherID {
		return apperr.Forbiddenf("Not teacher on Goal %d", id)
	}
	laps, err := s.goalRepo.LapCount(id)
	if err != nil {
		return err
	}
	if laps > 0 {
		return apperr.Conflictf("Goal with ID %d has laps recorded against it and cannot be deleted", id)
	}
	return s.goalRepo.DeleteWithLinks(id)
}

// LinkResource links one resource to the actor's goal. The resource must be
// the actor's own or public.
func (s *goalService) LinkResource(actor *model.User, req dto.GoalResourceLinkRequest) (*dto.GoalWithResourcesResponse, error) {
	goal, err := s.goalRepo.Get(req.GoalID)
	if err != nil {
		return nil, err
	}
	if actor.ID != goal.TeacherID {
		return nil, apperr.Forbiddenf("Not teacher on Goal %d", goal.ID)
	}
	resource, err := s.resourceRepo.Get(req.ResourceID)
	if err != nil {
		return nil, err
	}
	if resource.Private && actor.ID != resource.CreatorID {
		return nil, apperr.Forbiddenf("Not creator of private Resource")
	}
	if err := s.goalRepo.LinkResource(goal.ID, resource.ID); err != nil {
		return nil, err
	}
	return s.goalWithResources(goal)
}

// LinkResources links several resources at once. Requested resources the
// actor may not use (private, someone else's) are silently dropped; only a
// request where none of the ids resolve at all fails.
func (s *goalService) LinkResources(actor *model.User, req dto.GoalResourceMultiLinkRequest) (*dto.GoalWithResourcesResponse, error) {
	ids := dedupe(req.ResourceIDs)

	goal, err := s.goalRepo.Get(req.GoalID)
	if err != nil {
		return nil, err
	}
	if actor.ID != goal.TeacherID {
		return nil, apperr.Forbiddenf("Not teacher on Goal %d", goal.ID)
	}
	resources, err := s.resourceRepo.GetManyByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return nil, apperr.NotFoundf("Any Resource with IDs %v not found", ids)
	}

	usable := make(map[uint]bool, len(resources))
	for _, r := range resources {
		if r.CreatorID == actor.ID || !r.Private {
			usable[r.ID] = true
		}
	}
	for _, id := range ids {
		if !usable[id] {
			continue
		}
		if err := s.goalRepo.LinkResource(goal.ID, id); err != nil {
			return nil, err
		}
	}
	return s.goalWithResources(goal)
}

func (s *goalService) goalWithResources(goal *model.Goal) (*dto.GoalWithResourcesResponse, error) {
	resources, err := s.goalRepo.Resources(goal.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.GoalWithResourcesResponse{
		GoalResponse: toGoalResponse(goal),
		Resources:    make([]dto.ResourceWithCardsResponse, 0, len(resources)),
	}
	for i := range resources {
		resp.Resources = append(resp.Resources, toResourceWithCards(&resources[i], resources[i].Cards))
	}
	return &resp, nil
}
