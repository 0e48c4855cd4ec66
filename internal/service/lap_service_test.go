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

func TestLapCreate(t *testing.T) {
	f := newFixture(t)
	svc := f.lapService()
	teacher := f.user("teacher@example.com", model.RoleTeacher)
	student := f.user("student@example.com", model.RoleStudent)
	otherStudent := f.user("other@example.com", model.RoleStudent)
	goal := f.goal(teacher, student, f.standard())
	linked := f.resource(teacher, "linked deck", false)
	unlinked := f.resource(teacher, "unlinked deck", false)
	f.linkGoalResource(goal, linked)

	t.Run("the goal's student may start a lap", func(t *testing.T) {
		resp, err := svc.Create(student, dto.LapCreateRequest{GoalID: goal.ID, ResourceID: linked.ID})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if resp.StartTS.IsZero() {
			t.Error("start timestamp should be set on creation")
		}
		if resp.EndTS != nil || resp.Score != nil {
			t.Error("end timestamp and score should be unset on a fresh lap")
		}
	})

	t.Run("the teacher may not start a lap", func(t *testing.T) {
		_, err := svc.Create(teacher, dto.LapCreateRequest{GoalID: goal.ID, ResourceID: linked.ID})
		var forbidden *apperr.ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Fatalf("err = %v, want ForbiddenError", err)
		}
	})

	t.Run("another student may not start a lap", func(t *testing.T) {
		_, err := svc.Create(otherStudent, dto.LapCreateRequest{GoalID: goal.ID, ResourceID: linked.ID})
		var forbidden *apperr.ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Fatalf("err = %v, want ForbiddenError", err)
		}
	})

	t.Run("resource must be linked to the goal", func(t *testing.T) {
		_, err := svc.Create(student, dto.LapCreateRequest{GoalID: goal.ID, ResourceID: unlinked.ID})
		var nf *apperr.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("err = %v, want NotFoundError", err)
		}
		if !strings.Contains(nf.Message, "Link between Goal") {
			t.Errorf("message = %q", nf.Message)
		}
	})

	t.Run("unknown goal is not found", func(t *testing.T) {
		_, err := svc.Create(student, dto.LapCreateRequest{GoalID: 9999, ResourceID: linked.ID})
		var nf *apperr.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("err = %v, want NotFoundError", err)
		}
	})
}

func TestLapGetMembership(t *testing.T) {
	f := newFixture(t)
	svc := f.lapService()
	teacher := f.user("teacher@example.com", model.RoleTeacher)
	student := f.user("student@example.com", model.RoleStudent)
	stranger := f.user("stranger@example.com", model.RoleTeacher)
	goal := f.goal(teacher, student, f.standard())
	resource := f.resource(teacher, "deck", false)
	f.linkGoalResource(goal, resource)
	lap := f.lap(goal, resource)

	for _, member := range []*model.User{teacher, student} {
		if _, err := svc.Get(member, lap.ID); err != nil {
			t.Errorf("Get as %s: %v", member.Email, err)
		}
	}

	_, err := svc.Get(stranger, lap.ID)
	var forbidden *apperr.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("stranger Get: err = %v, want ForbiddenError", err)
	}
}

func TestLapUpdate(t *testing.T) {
	f := newFixture(t)
	svc := f.lapService()
	teacher := f.user("teacher@example.com", model.RoleTeacher)
	student := f.user("student@example.com", model.RoleStudent)
	goal := f.goal(teacher, student, f.standard())
	resource := f.resource(teacher, "deck", false)
	f.linkGoalResource(goal, resource)
	lap := f.lap(goal, resource)

	end := time.Now()
	score := 87.5
	resp, err := svc.Update(student, lap.ID, dto.LapUpdateRequest{EndTS: &end, Score: &score})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.EndTS == nil || resp.Score == nil || *resp.Score != score {
		t.Error("end timestamp and score should be stored")
	}

	_, err = svc.Update(teacher, lap.ID, dto.LapUpdateRequest{Score: &score})
	var forbidden *apperr.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("teacher Update: err = %v, want ForbiddenError", err)
	}
}
