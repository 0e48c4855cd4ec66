package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role,omitempty"`
	IsSuperuser bool   `json:"is_superuser"`
}

type ResourceResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Private bool   `json:"private"`
	Format  string `json:"format"`
}

// ResourceWithCreatorResponse carries the creator only when the viewer is
// the creator; for public resources viewed by anyone else the field is
// omitted so creator identity never leaks.
type ResourceWithCreatorResponse struct {
	ResourceResponse
	Creator *UserResponse `json:"creator,omitempty"`
}

type ResourceWithStandardsResponse struct {
	ResourceResponse
	Standards []StandardResponse `json:"standards"`
}

type ResourceWithCardsResponse struct {
	ResourceResponse
	Cards []CardResponse `json:"cards"`
}

type CardResponse struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type CardWithResourceResponse struct {
	CardResponse
	Resource ResourceResponse `json:"resource"`
}

type TopicResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
}

type StandardResponse struct {
	ID       uint          `json:"id"`
	Template string        `json:"template"`
	Grade    int           `json:"grade"`
	Subject  string        `json:"subject"`
	Topic    TopicResponse `json:"topic"`
}

type GroupResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

type GoalResponse struct {
	ID        uint             `json:"id"`
	StartDate *time.Time       `json:"start_date,omitempty"`
	EndDate   time.Time        `json:"end_date"`
	Accuracy  *float64         `json:"accuracy,omitempty"`
	NTrials   *int             `json:"n_trials,omitempty"`
	Teacher   UserResponse     `json:"teacher"`
	Student   UserResponse     `json:"student"`
	Standard  StandardResponse `json:"standard"`
}

type GoalWithResourcesResponse struct {
	GoalResponse
	Resources []ResourceWithCardsResponse `json:"resources"`
}

type LapResponse struct {
	ID       uint                      `json:"id"`
	StartTS  time.Time                 `json:"start_ts"`
	EndTS    *time.Time                `json:"end_ts,omitempty"`
	Score    *float64                  `json:"score,omitempty"`
	Goal     GoalResponse              `json:"goal"`
	Resource ResourceWithCardsResponse `json:"resource"`
}

// LapMinimalResponse is the flat form embedded in attempt responses.
type LapMinimalResponse struct {
	ID         uint       `json:"id"`
	GoalID     uint       `json:"goal_id"`
	ResourceID uint       `json:"resource_id"`
	StartTS    time.Time  `json:"start_ts"`
	EndTS      *time.Time `json:"end_ts,omitempty"`
	Score      *float64   `json:"score,omitempty"`
}

type LapWithAttemptsResponse struct {
	LapResponse
	Attempts []AttemptResponse `json:"attempts"`
}

type AttemptResponse struct {
	Submission string       `json:"submission"`
	Correct    bool         `json:"correct"`
	Card       CardResponse `json:"card"`
}

type AttemptWithLapResponse struct {
	AttemptResponse
	Lap LapMinimalResponse `json:"lap"`
}
