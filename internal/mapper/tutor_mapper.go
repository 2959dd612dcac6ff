package mapper

import (
	"learnz-tutor-be/internal/entity"
	"learnz-tutor-be/internal/model"
)

type TutorMapper struct{}

func NewTutorMapper() *TutorMapper {
	return &TutorMapper{}
}

// Message Mappers

func (m *TutorMapper) TutorMessageToEntity(msg *model.TutorMessage) *entity.TutorMessage {
	if msg == nil {
		return nil
	}

	return &entity.TutorMessage{
		Id:        msg.Id,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *TutorMapper) TutorMessageToModel(msg *entity.TutorMessage) *model.TutorMessage {
	if msg == nil {
		return nil
	}

	return &model.TutorMessage{
		Id:        msg.Id,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *TutorMapper) ClassroomTutorMessageToEntity(msg *model.ClassroomTutorMessage) *entity.ClassroomTutorMessage {
	if msg == nil {
		return nil
	}

	return &entity.ClassroomTutorMessage{
		Id:              msg.Id,
		Role:            msg.Role,
		Content:         msg.Content,
		UserId:          msg.UserId,
		ClassroomItemId: msg.ClassroomItemId,
		CreatedAt:       msg.CreatedAt,
	}
}

func (m *TutorMapper) ClassroomTutorMessageToModel(msg *entity.ClassroomTutorMessage) *model.ClassroomTutorMessage {
	if msg == nil {
		return nil
	}

	return &model.ClassroomTutorMessage{
		Id:              msg.Id,
		Role:            msg.Role,
		Content:         msg.Content,
		UserId:          msg.UserId,
		ClassroomItemId: msg.ClassroomItemId,
		CreatedAt:       msg.CreatedAt,
	}
}

// Item Mappers

func (m *TutorMapper) ClassroomItemToEntity(item *model.ClassroomItem) *entity.ClassroomItem {
	if item == nil {
		return nil
	}

	return &entity.ClassroomItem{
		Id:          item.Id,
		Title:       item.Title,
		Description: item.Description,
		VideoURL:    item.VideoURL,
		CreatedAt:   item.CreatedAt,
	}
}

// Usage Mappers

func (m *TutorMapper) UsageLogToEntity(l *model.UsageLog) *entity.UsageLog {
	if l == nil {
		return nil
	}

	return &entity.UsageLog{
		Id:              l.Id,
		Scope:           l.Scope,
		UserId:          l.UserId,
		ClassroomItemId: l.ClassroomItemId,
		QuizGenerated:   l.QuizGenerated,
		AudioGenerated:  l.AudioGenerated,
		ReplyChars:      l.ReplyChars,
		CreatedAt:       l.CreatedAt,
	}
}

func (m *TutorMapper) UsageLogToModel(l *entity.UsageLog) *model.UsageLog {
	if l == nil {
		return nil
	}

	return &model.UsageLog{
		Id:              l.Id,
		Scope:           l.Scope,
		UserId:          l.UserId,
		ClassroomItemId: l.ClassroomItemId,
		QuizGenerated:   l.QuizGenerated,
		AudioGenerated:  l.AudioGenerated,
		ReplyChars:      l.ReplyChars,
		CreatedAt:       l.CreatedAt,
	}
}
