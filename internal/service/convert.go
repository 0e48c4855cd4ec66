package service

import (
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// Mapping helpers shared by the services. Flat fields go through copier;
// closed string enums and nested shapes are set explicitly.

func toUserResponse(u *model.User) dto.UserResponse {
	var resp dto.UserResponse
	if err := copier.Copy(&resp, u); err != nil {
		log.Error().Err(err).Msg("Failed to copy User to UserResponse")
	}
	resp.Role = string(u.Role)
	return resp
}

func toResourceResponse(r *model.Resource) dto.ResourceResponse {
	return dto.ResourceResponse{
		ID:      r.ID,
		Name:    r.Name,
		Private: r.Private,
		Format:  string(r.Format),
	}
}

func toCardResponse(c *model.Card) dto.CardResponse {
	var resp dto.CardResponse
	if err := copier.Copy(&resp, c); err != nil {
		log.Error().Err(err).Msg("Failed to copy Card to CardResponse")
	}
	return resp
}

func toTopicResponse(t *model.Topic) dto.TopicResponse {
	var resp dto.TopicResponse
	if err := copier.Copy(&resp, t); err != nil {
		log.Error().Err(err).Msg("Failed to copy Topic to TopicResponse")
	}
	return resp
}

func toStandardResponse(s *model.Standard) dto.StandardResponse {
	return dto.StandardResponse{
		ID:       s.ID,
		Template: s.Template,
		Grade:    s.Grade,
		Subject:  string(s.Subject),
		Topic:    toTopicResponse(&s.Topic),
	}
}

func toGoalResponse(g *model.Goal) dto.GoalResponse {
	return dto.GoalResponse{
		ID:        g.ID,
		StartDate: g.StartDate,
		EndDate:   g.EndDate,
		Accuracy:  g.Accuracy,
		NTrials:   g.NTrials,
		Teacher:   toUserResponse(&g.Teacher),
		Student:   toUserResponse(&g.Student),
		Standard:  toStandardResponse(&g.Standard),
	}
}

func toResourceWithCards(r *model.Resource, cards []model.Card) dto.ResourceWithCardsResponse {
	resp := dto.ResourceWithCardsResponse{
		ResourceResponse: toResourceResponse(r),
		Cards:            make([]dto.CardResponse, 0, len(cards)),
	}
	for i := range cards {
		resp.Cards = append(resp.Cards, toCardResponse(&cards[i]))
	}
	return resp
}

func toLapMinimal(l *model.Lap) dto.LapMinimalResponse {
	return dto.LapMinimalResponse{
		ID:         l.ID,
		GoalID:     l.GoalID,
		ResourceID: l.ResourceID,
		StartTS:    l.StartTS,
		EndTS:      l.EndTS,
		Score:      l.Score,
	}
}
