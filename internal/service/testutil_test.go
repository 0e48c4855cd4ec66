package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/ebeyer/lapwise/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema and
// foreign keys enabled.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	t  *testing.T
	db *gorm.DB

	users     repository.UserRepository
	groups    repository.GroupRepository
	resources repository.ResourceRepository
	cards     repository.CardRepository
	topics    repository.TopicRepository
	standards repository.StandardRepository
	goals     repository.GoalRepository
	laps      repository.LapRepository
	attempts  repository.AttemptRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	return &fixture{
		t:         t,
		db:        db,
		users:     repository.NewUserRepository(db),
		groups:    repository.NewGroupRepository(db),
		resources: repository.NewResourceRepository(db),
		cards:     repository.NewCardRepository(db),
		topics:    repository.NewTopicRepository(db),
		standards: repository.NewStandardRepository(db),
		goals:     repository.NewGoalRepository(db),
		laps:      repository.NewLapRepository(db),
		attempts:  repository.NewAttemptRepository(db),
	}
}

func (f *fixture) resourceService() ResourceService {
	return NewResourceService(f.resources, f.standards)
}

func (f *fixture) cardService() CardService {
	return NewCardService(f.cards, f.resources)
}

func (f *fixture) goalService() GoalService {
	return NewGoalService(f.goals, f.resources, f.standards, f.users, f.groups)
}

func (f *fixture) lapService() LapService {
	return NewLapService(f.laps, f.goals, f.resources)
}

func (f *fixture) attemptService() AttemptService {
	return NewAttemptService(f.attempts, f.laps, f.cards, f.goals)
}

func (f *fixture) user(email string, role model.Role) *model.User {
	f.t.Helper()
	user := &model.User{Email: email, Role: role, IsActive: true, HashedPassword: "x"}
	if err := f.users.Create(user); err != nil {
		f.t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func (f *fixture) resource(creator *model.User, name string, private bool) *model.Resource {
	f.t.Helper()
	resource := &model.Resource{
		Name:      name,
		Private:   private,
		Format:    model.FormatFlashcard,
		CreatorID: creator.ID,
	}
	if err := f.resources.Create(resource); err != nil {
		f.t.Fatalf("create resource %s: %v", name, err)
	}
	return resource
}

func (f *fixture) card(resource *model.Resource, question, answer string) *model.Card {
	f.t.Helper()
	card := &model.Card{ResourceID: resource.ID, Question: question, Answer: answer}
	if err := f.cards.Create(card); err != nil {
		f.t.Fatalf("create card: %v", err)
	}
	return card
}

func (f *fixture) standard() *model.Standard {
	f.t.Helper()
	topic := &model.Topic{Description: "fractions"}
	if err := f.topics.Create(topic); err != nil {
		f.t.Fatalf("create topic: %v", err)
	}
	standard := &model.Standard{
		TopicID:  topic.ID,
		Template: "Add fractions with unlike denominators",
		Grade:    5,
		Subject:  model.SubjectMath,
	}
	if err := f.standards.Create(standard); err != nil {
		f.t.Fatalf("create standard: %v", err)
	}
	return standard
}

func (f *fixture) group(members ...*model.User) *model.Group {
	f.t.Helper()
	group := &model.Group{Label: fmt.Sprintf("class-%d", time.Now().UnixNano())}
	if err := f.groups.Create(group); err != nil {
		f.t.Fatalf("create group: %v", err)
	}
	for _, m := range members {
		if err := f.groups.AddMember(group.ID, m.ID); err != nil {
			f.t.Fatalf("add member: %v", err)
		}
	}
	return group
}

// goal creates a valid goal directly through the repository, bypassing the
// service-level creation checks.
func (f *fixture) goal(teacher, student *model.User, standard *model.Standard) *model.Goal {
	f.t.Helper()
	goal := &model.Goal{
		TeacherID:  teacher.ID,
		StudentID:  student.ID,
		StandardID: standard.ID,
		EndDate:    time.Now().Add(30 * 24 * time.Hour),
	}
	if err := f.goals.Create(goal); err != nil {
		f.t.Fatalf("create goal: %v", err)
	}
	return goal
}

func (f *fixture) linkGoalResource(goal *model.Goal, resource *model.Resource) {
	f.t.Helper()
	if err := f.goals.LinkResource(goal.ID, resource.ID); err != nil {
		f.t.Fatalf("link goal resource: %v", err)
	}
}

func (f *fixture) lap(goal *model.Goal, resource *model.Resource) *model.Lap {
	f.t.Helper()
	lap := &model.Lap{GoalID: goal.ID, ResourceID: resource.ID}
	if err := f.laps.Create(lap); err != nil {
		f.t.Fatalf("create lap: %v", err)
	}
	return lap
}

func futureDate() time.Time {
	return time.Now().Add(14 * 24 * time.Hour)
}

func goalCreateReq(student *model.User, standard *model.Standard, group *model.Group) dto.GoalCreateRequest {
	return dto.GoalCreateRequest{
		StudentID:  student.ID,
		StandardID: standard.ID,
		GroupID:    group.ID,
		EndDate:    futureDate(),
	}
}
