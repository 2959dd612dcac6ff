package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"learnz-tutor-be/internal/config"
	"learnz-tutor-be/internal/constant"
	"learnz-tutor-be/internal/dto"
	"learnz-tutor-be/internal/entity"
	"learnz-tutor-be/internal/pkg/logger"
	"learnz-tutor-be/internal/repository/specification"
	"learnz-tutor-be/internal/repository/unitofwork"
	"learnz-tutor-be/pkg/genai"
	"learnz-tutor-be/pkg/itemcache"
	"learnz-tutor-be/pkg/quiz"

	"github.com/google/uuid"
)

// GenerativeClient issues one generateContent call. The API key is per call
// because the answer and quiz prompts use separate keys.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, apiKey string, chatHistories []*genai.ChatHistory) (string, error)
}

// SpeechClient converts a reply to audio bytes.
type SpeechClient interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type ITutorService interface {
	Ask(ctx context.Context, request *dto.AskTutorRequest) (*dto.AskTutorResponse, error)
	AskClassroom(ctx context.Context, userId uuid.UUID, request *dto.AskTutorRequest) (*dto.AskTutorResponse, error)
	GetHistory(ctx context.Context) ([]*dto.TutorHistoryResponse, error)
	GetClassroomHistory(ctx context.Context, userId uuid.UUID, videoId string) ([]*dto.TutorHistoryResponse, error)
}

type tutorService struct {
	uowFactory       unitofwork.RepositoryFactory
	generativeClient GenerativeClient
	speechClient     SpeechClient
	publisherService IPublisherService
	keys             config.APIKeys
	historyLimit     int
	itemCache        *itemcache.Cache[*entity.ClassroomItem]
	log              logger.ILogger
}

func NewTutorService(
	uowFactory unitofwork.RepositoryFactory,
	generativeClient GenerativeClient,
	speechClient SpeechClient,
	publisherService IPublisherService,
	keys config.APIKeys,
	historyLimit int,
	log logger.ILogger,
) ITutorService {
	return &tutorService{
		uowFactory:       uowFactory,
		generativeClient: generativeClient,
		speechClient:     speechClient,
		publisherService: publisherService,
		keys:             keys,
		historyLimit:     historyLimit,
		itemCache:        itemcache.New[*entity.ClassroomItem](5*time.Minute, 10*time.Minute),
		log:              log,
	}
}

// Ask handles the open endpoint: one global conversation shared by all
// anonymous callers.
func (s *tutorService) Ask(ctx context.Context, request *dto.AskTutorRequest) (*dto.AskTutorResponse, error) {
	return s.ask(ctx, NewGlobalScope(), nil, nil, request)
}

// AskClassroom handles the authenticated endpoint. The classroom item is
// looked up from the request's videoId; a miss scopes the turn to a null
// item association instead of failing.
func (s *tutorService) AskClassroom(ctx context.Context, userId uuid.UUID, request *dto.AskTutorRequest) (*dto.AskTutorResponse, error) {
	itemId := s.resolveClassroomItem(ctx, request.VideoId)
	return s.ask(ctx, NewClassroomScope(userId, itemId), &userId, itemId, request)
}

// ask is the single flow behind both variants. The user turn, the two
// Gemini calls, and the assistant turn share one transaction: a failed
// call rolls back the user message instead of orphaning it. Speech
// synthesis stays outside the transaction and is the only tolerated
// failure - the reply degrades to text-only.
func (s *tutorService) ask(
	ctx context.Context,
	scope HistoryScope,
	userId *uuid.UUID,
	itemId *uuid.UUID,
	request *dto.AskTutorRequest,
) (*dto.AskTutorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	if err := scope.Append(ctx, uow, constant.ChatMessageRoleUser, request.Text, now); err != nil {
		return nil, err
	}

	// History is loaded after the append so the current message is part of
	// the serialized conversation, same as the stored record.
	history, err := scope.Load(ctx, uow, s.historyLimit)
	if err != nil {
		return nil, err
	}

	primaryPrompt := composePrimaryPrompt(request.VideoContext, history)
	aiReply, err := s.generativeClient.GenerateContent(ctx, s.keys.GoogleGemini, []*genai.ChatHistory{
		{Chat: primaryPrompt, Role: genai.ChatMessageRoleUser},
		{Chat: request.Text, Role: genai.ChatMessageRoleUser},
	})
	if err != nil {
		return nil, err
	}

	quizPrompt := composeQuizPrompt(request.Text, request.VideoContext)
	quizReply, err := s.generativeClient.GenerateContent(ctx, s.keys.GoogleGeminiQuiz, []*genai.ChatHistory{
		{Chat: quizPrompt, Role: genai.ChatMessageRoleUser},
	})
	if err != nil {
		return nil, err
	}

	if err := scope.Append(ctx, uow, constant.ChatMessageRoleAssistant, aiReply, time.Now()); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	var audioBase64 *string
	audioBytes, ttsErr := s.speechClient.Synthesize(ctx, aiReply)
	if ttsErr != nil {
		s.log.Warn("tutor", "Speech synthesis failed, returning text-only reply", map[string]interface{}{
			"error": ttsErr.Error(),
			"scope": scope.Name(),
		})
	} else {
		encoded := base64.StdEncoding.EncodeToString(audioBytes)
		audioBase64 = &encoded
	}

	quizGenerated := s.validateQuizReply(quizReply)

	s.publishTurn(ctx, dto.PublishTutorTurnMessage{
		Scope:           scope.Name(),
		UserId:          userId,
		ClassroomItemId: itemId,
		QuizGenerated:   quizGenerated,
		AudioGenerated:  audioBase64 != nil,
		ReplyChars:      len(aiReply),
	})

	return &dto.AskTutorResponse{
		AiText:      aiReply,
		AiAudio:     audioBase64,
		AiReasoning: nil,
		AiQuiz:      quizReply,
	}, nil
}

// validateQuizReply runs the typed quiz boundary. The raw text still goes
// to the caller untouched; the parse result only drives usage accounting
// and a warning when the model emitted a malformed quiz.
func (s *tutorService) validateQuizReply(quizReply string) bool {
	result, err := quiz.Parse(quizReply)
	if err != nil {
		s.log.Warn("tutor", "Quiz reply failed validation", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return result.HasQuiz
}

func (s *tutorService) publishTurn(ctx context.Context, payload dto.PublishTutorTurnMessage) {
	msgJson, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.log.Warn("tutor", "Failed to publish turn event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// resolveClassroomItem maps the request's videoId to a classroom item id.
// Bad identifiers and lookup misses both yield nil.
func (s *tutorService) resolveClassroomItem(ctx context.Context, videoId string) *uuid.UUID {
	if videoId == "" {
		return nil
	}
	id, err := uuid.Parse(videoId)
	if err != nil {
		return nil
	}

	if item, ok := s.itemCache.Get(videoId); ok {
		if item == nil {
			return nil
		}
		return &item.Id
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.ClassroomItemRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		s.log.Warn("tutor", "Classroom item lookup failed", map[string]interface{}{
			"error":    err.Error(),
			"video_id": videoId,
		})
		return nil
	}

	s.itemCache.Set(videoId, item)
	if item == nil {
		return nil
	}
	return &item.Id
}

func (s *tutorService) GetHistory(ctx context.Context) ([]*dto.TutorHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.TutorMessageRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.TutorHistoryResponse, 0, len(messages))
	for _, msg := range messages {
		response = append(response, &dto.TutorHistoryResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	return response, nil
}

func (s *tutorService) GetClassroomHistory(ctx context.Context, userId uuid.UUID, videoId string) ([]*dto.TutorHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	itemId := s.resolveClassroomItem(ctx, videoId)

	messages, err := uow.ClassroomTutorMessageRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.ByClassroomItemID{ClassroomItemID: itemId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.TutorHistoryResponse, 0, len(messages))
	for _, msg := range messages {
		response = append(response, &dto.TutorHistoryResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	return response, nil
}
