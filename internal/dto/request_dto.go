package dto

import "time"

// SignupRequest creates a new account. No login required.
type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role" binding:"omitempty,oneof=teacher student"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserUpdateRequest patches the logged-in user. Only fields present in the
// body are applied.
type UserUpdateRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DisplayName *string `json:"display_name"`
	Role        *string `json:"role" binding:"omitempty,oneof=teacher student"`
	Password    *string `json:"password"`
}

type ResourceCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Private *bool  `json:"private"`
	Format  string `json:"format" binding:"omitempty,oneof=flashcard pdf"`
}

type ResourceUpdateRequest struct {
	Name    *string `json:"name"`
	Private *bool   `json:"private"`
	Format  *string `json:"format" binding:"omitempty,oneof=flashcard pdf"`
}

// StandardLinkRequest links one resource to one standard.
type StandardLinkRequest struct {
	StandardID uint `json:"standard_id" binding:"required"`
	ResourceID uint `json:"resource_id" binding:"required"`
}

// StandardMultiLinkRequest links one resource to several standards at once.
type StandardMultiLinkRequest struct {
	ResourceID  uint   `json:"resource_id" binding:"required"`
	StandardIDs []uint `json:"standard_ids" binding:"required,min=1"`
}

type CardCreateRequest struct {
	ResourceID uint   `json:"resource_id" binding:"required"`
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type CardUpdateRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

type TopicCreateRequest struct {
	Description string `json:"description" binding:"required"`
}

type StandardCreateRequest struct {
	TopicID  uint   `json:"topic_id" binding:"required"`
	Template string `json:"template" binding:"required"`
	Grade    int    `json:"grade" binding:"required,gte=1,lte=12"`
	Subject  string `json:"subject" binding:"required,oneof=math ela"`
}

type GroupCreateRequest struct {
	Label string `json:"label" binding:"required"`
}

type GroupMemberRequest struct {
	GroupID uint `json:"group_id" binding:"required"`
	UserID  uint `json:"user_id" binding:"required"`
}

type GoalCreateRequest struct {
	StudentID  uint       `json:"student_id" binding:"required"`
	StandardID uint       `json:"standard_id" binding:"required"`
	GroupID    uint       `json:"group_id" binding:"required"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    time.Time  `json:"end_date" binding:"required"`
	Accuracy   *float64   `json:"accuracy" binding:"omitempty,gt=0,lte=100"`
	NTrials    *int       `json:"n_trials" binding:"omitempty,gt=0"`
}

type GoalResourceLinkRequest struct {
	GoalID     uint `json:"goal_id" binding:"required"`
	ResourceID uint `json:"resource_id" binding:"required"`
}

type GoalResourceMultiLinkRequest struct {
	GoalID      uint   `json:"goal_id" binding:"required"`
	ResourceIDs []uint `json:"resource_ids" binding:"required,min=1"`
}

type LapCreateRequest struct {
	GoalID     uint `json:"goal_id" binding:"required"`
	ResourceID uint `json:"resource_id" binding:"required"`
}

// LapUpdateRequest closes out a lap.
type LapUpdateRequest struct {
	EndTS *time.Time `json:"end_ts"`
	Score *float64   `json:"score"`
}

type AttemptCreateRequest struct {
	LapID      uint   `json:"lap_id" binding:"required"`
	CardID     uint   `json:"card_id" binding:"required"`
	Submission string `json:"submission" binding:"required"`
}
