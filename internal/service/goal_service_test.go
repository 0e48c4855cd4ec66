package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
)

func TestGoalCreate(t *testing.T) {
	f := newFixture(t)
	svc := f.goalService()
	teacher := f.user("teacher@example.com", model.RoleTeacher)
	student := f.user("student@example.com", model.RoleStudent)
	outsider := f.user("outsider@example.com", model.RoleStudent)
	standard := f.standard()
	group := f.group(teacher, student)

	t.Run("succeeds for teacher and student in the same group", func(t *testing.T) {
		resp, err := svc.Create(teacher, goalCreateReq(student, standard, group))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if resp.Student.ID != student.ID || resp.Teacher.ID != teacher.ID {
			t.Error("goal should carry the teacher and student")
		}
		if len(resp.Resources) != 0 {
			t.Errorf("new goal should have no resources, got %d", len(resp.Resources))
		}
	})

	t.Run("unknown student is not found", func(t *testing.T) {
		req := goalCreateReq(student, standard, group)
		req.StudentID = 9999
		_, err := svc.Create(teacher, req)
		var nf *apperr.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("err = %v, want NotFoundError", err)
		}
		if !strings.Contains(nf.Message, "Student with ID 9999") {
			t.Errorf("message = %q", nf.Message)
		}
	})

	t.Run("assigning to a teacher is a validation error", func(t *testing.T) {
		other := f.user("teacher2@example.com", model.RoleTeacher)
		if err := f.groups.AddMember(group.ID, other.ID); err != nil {
			t.Fatalf("add member: %v", err)
		}
		req := goalCreateReq(other, standard, group)
		_, err := svc.Create(teacher, req)
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
	})

	t.Run("teacher outside the group is forbidden", func(t *testing.T) {
		lone := f.user("lone@example.com", model.RoleTeacher)
		_, err := svc.Create(lone, goalCreateReq(student, standard, group))
		var forbidden *apperr.ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Fatalf("err = %v, want ForbiddenError", err)
		}
	})

	t.Run("student outside the group is forbidden", func(t *testing.T) {
		_, err := svc.Create(teacher, goalCreateReq(outsider, standard, group))
		var forbidden *apperr.ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Fatalf("err = %v, want ForbiddenError", err)
		}
	})

	t.Run("end date in the past is a validation error", func(t *testing.T) {
		req := goalCreateReq(student, standard, group)
		req.EndDate = time.Now().Add(-time.Hour)
		_, err := svc.Create(teacher, req)
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
	})

	t.Run("accuracy outside (0,100] is a validation error", func(t *testing.T) {
		req := goalCreateReq(student, standard, group)
		bad := 120.0
		req.Accuracy = &bad
		_, err := svc.Create(teacher, req)
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
	})
}

func TestGoalGetMembership(t *testing.T) {
	f := newFixture(t)
	svc := f.goalService()
	teacher := f.user("teacher@example.com", model.RoleTeacher)
	student := f.user("student@example.com", model.RoleStudent)
	stranger := f.user("stranger@example.com", model.RoleStudent)
	goal := f.goal(teacher, student, f.standard())

	for _, member := range []*model.User{teacher, student} {
		if _, err := svc.Get(member, goal.ID); err != nil {
			t.Errorf("Get as %s: %v", member.Email, err)
		}
	}

	_, err := svc.Get(stranger, goal.ID)
	var forbidden *apperr.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("stranger Get: err = %v, want ForbiddenError", err)
	}
}

func TestGoalDelete(t *testing.T) {
	f := newFixture(t)
	svc := f.goalService()
	teacher := f.user("teacher@example.com", model.RoleTeacher)
	student := f.user("student@example.com", model.RoleStudent)
	standard := f.standard()

	t.Run("removes links when no laps exist", func(t *testing.T) {
		goal := f.goal(teacher, student, standard)
		resource := f.resource(teacher, "deck", false)
		f.linkGoalResource(goal, resource)

		if err := svc.Delete(teacher, goal.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		var links int64
		f.db.Model(&model.GoalResource{}).Where("goal_id = ?", goal.ID).Count(&links)
		if links != 0 {
			t.Errorf("links remaining = %d, want 0", links)
		}
	})

	t.Run("refuses while laps exist", func(t *testing.T) {
		goal := f.goal(teacher, student, standard)
		resource := f.resource(teacher, "deck2", false)
		f.linkGoalResource(goal, resource)
		f.lap(goal, resource)

		err := svc.Delete(teacher, goal.ID)
		var conflict *apperr.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("err = %v, want ConflictError", err)
		}
	})

	t.Run("student may not delete", func(t *testing.T) {
		goal := f.goal(teacher, student, standard)
		err := svc.Delete(student, goal.ID)
		var forbidden *apperr.ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Fatalf("err = %v, want ForbiddenError", err)
		}
	})
}

func TestGoalLinkResource(t *testing.T) {
	f := newFixture(t)
	svc := f.goalService()
	teacher := f.user("teacher@example.com", model.RoleTeacher)
	other := f.user("other@example.com", model.RoleTeacher)
	student := f.user("student@example.com", model.RoleStudent)
	goal := f.goal(teacher, student, f.standard())

	own := f.resource(teacher, "own", true)
	theirsPublic := f.resource(other, "public", false)
	theirsPrivate := f.resource(other, "private", true)

	t.Run("own private resource links", func(t *testing.T) {
		resp, err := svc.LinkResource(teacher, dto.GoalResourceLinkRequest{GoalID: goal.ID, ResourceID: own.ID})
		if err != nil {
			t.Fatalf("LinkResource: %v", err)
		}
		if len(resp.Resources) != 1 {
			t.Errorf("resources = %d, want 1", len(resp.Resources))
		}
	})

	t.Run("someone else's public resource links", func(t *testing.T) {
		if _, err := svc.LinkResource(teacher, dto.GoalResourceLinkRequest{GoalID: goal.ID, ResourceID: theirsPublic.ID}); err != nil {
			t.Fatalf("LinkResource: %v", err)
		}
	})

	t.Run("someone else's private resource is forbidden", func(t *testing.T) {
		_, err := svc.LinkResource(teacher, dto.GoalResourceLinkRequest{GoalID: goal.ID, ResourceID: theirsPrivate.ID})
		var forbidden *apperr.ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Fatalf("err = %v, want ForbiddenError", err)
		}
	})

	t.Run("only the goal's teacher may link", func(t *testing.T) {
		_, err := svc.LinkResource(other, dto.GoalResourceLinkRequest{GoalID: goal.ID, ResourceID: theirsPublic.ID})
		var forbidden *apperr.ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Fatalf("err = %v, want ForbiddenError", err)
		}
	})

	t.Run("repeat link is a no-op", func(t *testing.T) {
		resp, err := svc.LinkResource(teacher, dto.GoalResourceLinkRequest{GoalID: goal.ID, ResourceID: own.ID})
		if err != nil {
			t.Fatalf("LinkResource: %v", err)
		}
		if len(resp.Resources) != 2 {
			t.Errorf("resources = %d, want 2", len(resp.Resources))
		}
	})
}

func TestGoalLinkResources(t *testing.T) {
	f := newFixture(t)
	svc := f.goalService()
	teacher := f.user("teacher@example.com", model.RoleTeacher)
	other := f.user("other@example.com", model.RoleTeacher)
	student := f.user("student@example.com", model.RoleStudent)
	goal := f.goal(teacher, student, f.standard())

	own := f.resource(teacher, "own", true)
	theirsPublic := f.resource(other, "public", false)
	theirsPrivate := f.resource(other, "private", true)

	t.Run("unusable resources are silently dropped", func(t *testing.T) {
		req := dto.GoalResourceMultiLinkRequest{
			GoalID:      goal.ID,
			ResourceIDs: []uint{own.ID, theirsPublic.ID, theirsPrivate.ID, 9999},
		}
		resp, err := svc.LinkResources(teacher, req)
		if err != nil {
			t.Fatalf("LinkResources: %v", err)
		}
		if len(resp.Resources) != 2 {
			t.Fatalf("resources = %d, want 2", len(resp.Resources))
		}
		for _, r := range resp.Resources {
			if r.ID == theirsPrivate.ID {
				t.Error("private resource of another user must not be linked")
			}
		}
	})

	t.Run("fails when no id resolves", func(t *testing.T) {
		req := dto.GoalResourceMultiLinkRequest{
			GoalID:      goal.ID,
			ResourceIDs: []uint{9998, 9999},
		}
		_, err := svc.LinkResources(teacher, req)
		var nf *apperr.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("err = %v, want NotFoundError", err)
		}
	})
}
