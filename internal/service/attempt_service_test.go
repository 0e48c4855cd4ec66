package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
)

func TestAttemptCreate(t *testing.T) {
	f := newFixture(t)
	svc := f.attemptService()
	teacher := f.user("teacher@example.com", model.RoleTeacher)
	student := f.user("student@example.com", model.RoleStudent)
	otherStudent := f.user("other@example.com", model.RoleStudent)
	goal := f.goal(teacher, student, f.standard())
	resource := f.resource(teacher, "capitals", false)
	card := f.card(resource, "Capital of France?", "Paris")
	f.linkGoalResource(goal, resource)
	lap := f.lap(goal, resource)

	t.Run("grades a correct submission", func(t *testing.T) {
		resp, err := svc.Create(student, dto.AttemptCreateRequest{
			LapID: lap.ID, CardID: card.ID, Submission: "  paris ",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if !resp.Correct {
			t.Error("normalized match should grade correct")
		}
		if resp.Submission != "  paris " {
			t.Errorf("submission stored as %q, want the raw text", resp.Submission)
		}
		if resp.Lap.ID != lap.ID {
			t.Error("response should reference the lap")
		}
	})

	t.Run("grades an incorrect submission", func(t *testing.T) {
		resp, err := svc.Create(student, dto.AttemptCreateRequest{
			LapID: lap.ID, CardID: card.ID, Submission: "London",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if resp.Correct {
			t.Error("wrong answer should grade incorrect")
		}
	})

	t.Run("only the goal's student may submit", func(t *testing.T) {
		for _, actor := range []*model.User{teacher, otherStudent} {
			_, err := svc.Create(actor, dto.AttemptCreateRequest{
				LapID: lap.ID, CardID: card.ID, Submission: "Paris",
			})
			var forbidden *apperr.ForbiddenError
			if !errors.As(err, &forbidden) {
				t.Errorf("as %s: err = %v, want ForbiddenError", actor.Email, err)
			}
		}
	})

	t.Run("unknown lap is not found", func(t *testing.T) {
		_, err := svc.Create(student, dto.AttemptCreateRequest{
			LapID: 9999, CardID: card.ID, Submission: "Paris",
		})
		var nf *apperr.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("err = %v, want NotFoundError", err)
		}
		if !strings.Contains(nf.Message, "Lap") {
			t.Errorf("message = %q, should name the lap", nf.Message)
		}
	})

	t.Run("unknown card is not found", func(t *testing.T) {
		_, err := svc.Create(student, dto.AttemptCreateRequest{
			LapID: lap.ID, CardID: 9999, Submission: "Paris",
		})
		var nf *apperr.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("err = %v, want NotFoundError", err)
		}
		if !strings.Contains(nf.Message, "Card") {
			t.Errorf("message = %q, should name the card", nf.Message)
		}
	})
}

func TestLapGetIncludesAttempts(t *testing.T) {
	f := newFixture(t)
	teacher := f.user("teacher@example.com", model.RoleTeacher)
	student := f.user("student@example.com", model.RoleStudent)
	goal := f.goal(teacher, student, f.standard())
	resource := f.resource(teacher, "capitals", false)
	card := f.card(resource, "Capital of France?", "Paris")
	f.linkGoalResource(goal, resource)
	lap := f.lap(goal, resource)

	attempts := f.attemptService()
	for _, submission := range []string{"Paris", "London"} {
		if _, err := attempts.Create(student, dto.AttemptCreateRequest{
			LapID: lap.ID, CardID: card.ID, Submission: submission,
		}); err != nil {
			t.Fatalf("Create attempt: %v", err)
		}
	}

	resp, err := f.lapService().Get(teacher, lap.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(resp.Attempts) != 2 {
		t.Fatalf("attempts = %d, want 2", len(resp.Attempts))
	}
	if !resp.Attempts[0].Correct || resp.Attempts[1].Correct {
		t.Error("attempt grades should be preserved as recorded")
	}
	if resp.Attempts[0].Card.ID != card.ID {
		t.Error("attempts should carry their card")
	}
}
