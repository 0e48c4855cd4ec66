package service

import (
	"errors"
	"testing"

	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
)

func TestStandardCreate(t *testing.T) {
	f := newFixture(t)
	svc := NewStandardService(f.standards, f.topics)

	topic := &model.Topic{Description: "geometry"}
	if err := f.topics.Create(topic); err != nil {
		t.Fatalf("create topic: %v", err)
	}

	resp, err := svc.Create(dto.StandardCreateRequest{
		TopicID:  topic.ID,
		Template: "Classify two-dimensional figures",
		Grade:    5,
		Subject:  "math",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Topic.Description != "geometry" {
		t.Error("standard should carry its topic")
	}

	_, err = svc.Create(dto.StandardCreateRequest{
		TopicID: 9999, Template: "x", Grade: 3, Subject: "ela",
	})
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("unknown topic: err = %v, want NotFoundError", err)
	}
}

func TestGroupAddMember(t *testing.T) {
	f := newFixture(t)
	svc := NewGroupService(f.groups, f.users)
	user := f.user("member@example.com", model.RoleStudent)

	group, err := svc.Create(dto.GroupCreateRequest{Label: "period 3"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := dto.GroupMemberRequest{GroupID: group.ID, UserID: user.ID}
	if err := svc.AddMember(req); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	// Adding the same member again is a no-op.
	if err := svc.AddMember(req); err != nil {
		t.Fatalf("repeat AddMember: %v", err)
	}
	in, err := f.groups.HasMember(group.ID, user.ID)
	if err != nil || !in {
		t.Errorf("HasMember = %v, %v; want membership", in, err)
	}

	err = svc.AddMember(dto.GroupMemberRequest{GroupID: group.ID, UserID: 9999})
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("unknown user: err = %v, want NotFoundError", err)
	}
}
