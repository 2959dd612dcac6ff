package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"testing"

	"learnz-tutor-be/internal/config"
	"learnz-tutor-be/internal/constant"
	"learnz-tutor-be/internal/dto"
	"learnz-tutor-be/internal/entity"
	"learnz-tutor-be/internal/repository/contract"
	"learnz-tutor-be/internal/repository/specification"
	"learnz-tutor-be/internal/repository/unitofwork"
	"learnz-tutor-be/pkg/genai"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- In-memory persistence fakes ---

type memStore struct {
	global    []*entity.TutorMessage
	classroom []*entity.ClassroomTutorMessage
	items     map[uuid.UUID]*entity.ClassroomItem

	// usage rows are written from the consumer goroutine
	usageMu sync.Mutex
	usage   []*entity.UsageLog
}

func (s *memStore) usageLogs() []*entity.UsageLog {
	s.usageMu.Lock()
	defer s.usageMu.Unlock()
	return append([]*entity.UsageLog{}, s.usage...)
}

type memUow struct {
	store *memStore

	inTx             int
	pendingGlobal    []*entity.TutorMessage
	pendingClassroom []*entity.ClassroomTutorMessage
}

func (u *memUow) Begin(ctx context.Context) error {
	if u.inTx > 0 {
		return fmt.Errorf("transaction already started")
	}
	u.inTx++
	return nil
}

func (u *memUow) Commit() error {
	if u.inTx == 0 {
		return fmt.Errorf("no transaction to commit")
	}
	u.store.global = append(u.store.global, u.pendingGlobal...)
	u.store.classroom = append(u.store.classroom, u.pendingClassroom...)
	u.pendingGlobal = nil
	u.pendingClassroom = nil
	u.inTx = 0
	return nil
}

func (u *memUow) Rollback() error {
	if u.inTx == 0 {
		return fmt.Errorf("no transaction to rollback")
	}
	u.pendingGlobal = nil
	u.pendingClassroom = nil
	u.inTx = 0
	return nil
}

func (u *memUow) TutorMessageRepository() contract.TutorMessageRepository {
	return &memTutorMessageRepo{uow: u}
}

func (u *memUow) ClassroomTutorMessageRepository() contract.ClassroomTutorMessageRepository {
	return &memClassroomMessageRepo{uow: u}
}

func (u *memUow) ClassroomItemRepository() contract.ClassroomItemRepository {
	return &memItemRepo{uow: u}
}

func (u *memUow) UsageLogRepository() contract.UsageLogRepository {
	return &memUsageRepo{uow: u}
}

type memFactory struct {
	store *memStore
}

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUow{store: f.store}
}

// querySpecs applies the subset of specifications the service uses.
func querySpecs(specs []specification.Specification) (desc bool, limit int) {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.OrderBy:
			desc = spec.Desc
		case specification.Pagination:
			limit = spec.Limit
		}
	}
	return desc, limit
}

type memTutorMessageRepo struct {
	uow *memUow
}

func (r *memTutorMessageRepo) Create(ctx context.Context, message *entity.TutorMessage) error {
	if r.uow.inTx > 0 {
		r.uow.pendingGlobal = append(r.uow.pendingGlobal, message)
	} else {
		r.uow.store.global = append(r.uow.store.global, message)
	}
	return nil
}

func (r *memTutorMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorMessage, error) {
	// Visible rows: committed plus this transaction's own writes, in
	// creation order.
	rows := append([]*entity.TutorMessage{}, r.uow.store.global...)
	rows = append(rows, r.uow.pendingGlobal...)

	desc, limit := querySpecs(specs)
	if desc {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *memTutorMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.uow.store.global) + len(r.uow.pendingGlobal)), nil
}

type memClassroomMessageRepo struct {
	uow *memUow
}

func (r *memClassroomMessageRepo) Create(ctx context.Context, message *entity.ClassroomTutorMessage) error {
	if r.uow.inTx > 0 {
		r.uow.pendingClassroom = append(r.uow.pendingClassroom, message)
	} else {
		r.uow.store.classroom = append(r.uow.store.classroom, message)
	}
	return nil
}

func (r *memClassroomMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassroomTutorMessage, error) {
	var userId *uuid.UUID
	var itemFilter bool
	var itemId *uuid.UUID
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByUserID:
			id := spec.UserID
			userId = &id
		case specification.ByClassroomItemID:
			itemFilter = true
			itemId = spec.ClassroomItemID
		}
	}

	all := append([]*entity.ClassroomTutorMessage{}, r.uow.store.classroom...)
	all = append(all, r.uow.pendingClassroom...)

	rows := make([]*entity.ClassroomTutorMessage, 0, len(all))
	for _, msg := range all {
		if userId != nil && msg.UserId != *userId {
			continue
		}
		if itemFilter {
			if itemId == nil && msg.ClassroomItemId != nil {
				continue
			}
			if itemId != nil && (msg.ClassroomItemId == nil || *msg.ClassroomItemId != *itemId) {
				continue
			}
		}
		rows = append(rows, msg)
	}

	desc, limit := querySpecs(specs)
	if desc {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *memClassroomMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	rows, err := r.FindAll(ctx, specs...)
	return int64(len(rows)), err
}

type memItemRepo struct {
	uow *memUow
}

func (r *memItemRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClassroomItem, error) {
	for _, s := range specs {
		if spec, ok := s.(specification.ByID); ok {
			return r.uow.store.items[spec.ID], nil
		}
	}
	return nil, nil
}

type memUsageRepo struct {
	uow *memUow
}

func (r *memUsageRepo) Create(ctx context.Context, log *entity.UsageLog) error {
	r.uow.store.usageMu.Lock()
	defer r.uow.store.usageMu.Unlock()
	r.uow.store.usage = append(r.uow.store.usage, log)
	return nil
}

func (r *memUsageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageLog, error) {
	return r.uow.store.usageLogs(), nil
}

func (r *memUsageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.uow.store.usageLogs())), nil
}

// --- Outbound client fakes ---

// fakeGenerative answers by API key so the answer call and the quiz call
// can be scripted independently.
type fakeGenerative struct {
	replies map[string]string
	errs    map[string]error
	calls   []fakeGenerativeCall
}

type fakeGenerativeCall struct {
	apiKey    string
	histories []*genai.ChatHistory
}

func (f *fakeGenerative) GenerateContent(ctx context.Context, apiKey string, chatHistories []*genai.ChatHistory) (string, error) {
	f.calls = append(f.calls, fakeGenerativeCall{apiKey: apiKey, histories: chatHistories})
	if err, ok := f.errs[apiKey]; ok {
		return "", err
	}
	return f.replies[apiKey], nil
}

type fakeSpeech struct {
	audio []byte
	err   error
	texts []string
}

func (f *fakeSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	f.texts = append(f.texts, text)
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

type fakePublisher struct {
	payloads [][]byte
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// --- Fixture ---

const (
	primaryKey = "primary-key"
	quizKey    = "quiz-key"
)

type fixture struct {
	store     *memStore
	gen       *fakeGenerative
	tts       *fakeSpeech
	publisher *fakePublisher
	service   ITutorService
}

func newFixture(historyLimit int) *fixture {
	store := &memStore{items: map[uuid.UUID]*entity.ClassroomItem{}}
	gen := &fakeGenerative{
		replies: map[string]string{primaryKey: "Hi there!", quizKey: "None"},
		errs:    map[string]error{},
	}
	tts := &fakeSpeech{audio: []byte("AUDIO")}
	publisher := &fakePublisher{}

	svc := NewTutorService(
		&memFactory{store: store},
		gen,
		tts,
		publisher,
		config.APIKeys{GoogleGemini: primaryKey, GoogleGeminiQuiz: quizKey},
		historyLimit,
		nopLogger{},
	)

	return &fixture{store: store, gen: gen, tts: tts, publisher: publisher, service: svc}
}

// --- Tests ---

func TestAskSuccess(t *testing.T) {
	f := newFixture(0)

	res, err := f.service.Ask(context.Background(), &dto.AskTutorRequest{
		Text:         "Hello",
		VideoContext: "Intro to loops",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hi there!", res.AiText)
	require.NotNil(t, res.AiAudio)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("AUDIO")), *res.AiAudio)
	assert.Nil(t, res.AiReasoning)
	assert.Equal(t, "None", res.AiQuiz)

	// Both turns committed, oldest first.
	require.Len(t, f.store.global, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, f.store.global[0].Role)
	assert.Equal(t, "Hello", f.store.global[0].Content)
	assert.Equal(t, constant.ChatMessageRoleAssistant, f.store.global[1].Role)
	assert.Equal(t, "Hi there!", f.store.global[1].Content)

	// The reply, not the prompt, goes to synthesis.
	require.Len(t, f.tts.texts, 1)
	assert.Equal(t, "Hi there!", f.tts.texts[0])

	// One turn event published.
	assert.Len(t, f.publisher.payloads, 1)
}

func TestAskComposesPromptsForBothCalls(t *testing.T) {
	f := newFixture(0)

	_, err := f.service.Ask(context.Background(), &dto.AskTutorRequest{
		Text:         "Hello",
		VideoContext: "Intro to loops",
	})
	require.NoError(t, err)

	require.Len(t, f.gen.calls, 2)

	primary := f.gen.calls[0]
	assert.Equal(t, primaryKey, primary.apiKey)
	require.Len(t, primary.histories, 2)
	assert.Contains(t, primary.histories[0].Chat, "[current video context]: [ Intro to loops ]")
	assert.Contains(t, primary.histories[0].Chat, `"content":"Hello"`) // history includes the new turn
	assert.Equal(t, "Hello", primary.histories[1].Chat)

	quizCall := f.gen.calls[1]
	assert.Equal(t, quizKey, quizCall.apiKey)
	require.Len(t, quizCall.histories, 1)
	assert.Contains(t, quizCall.histories[0].Chat, "Analyze the user message: Hello.")
	assert.Contains(t, quizCall.histories[0].Chat, "[Intro to loops]")
}

func TestAskSynthesisFailureIsTolerated(t *testing.T) {
	f := newFixture(0)
	f.tts.err = errors.New("status error, got status 503. with response body busy")

	res, err := f.service.Ask(context.Background(), &dto.AskTutorRequest{Text: "Hello"})

	require.NoError(t, err)
	assert.Nil(t, res.AiAudio)
	assert.Equal(t, "Hi there!", res.AiText)
	assert.Equal(t, "None", res.AiQuiz)
	assert.Len(t, f.store.global, 2)
}

func TestAskPrimaryFailureAbortsAndPersistsNothing(t *testing.T) {
	f := newFixture(0)
	f.gen.errs[primaryKey] = &genai.StatusError{StatusCode: 500, Body: "model exploded"}

	_, err := f.service.Ask(context.Background(), &dto.AskTutorRequest{Text: "Hello"})

	require.Error(t, err)
	var statusErr *genai.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "model exploded", statusErr.Body)

	// Transaction rolled back: no orphaned user message either.
	assert.Empty(t, f.store.global)
	assert.Empty(t, f.tts.texts)
	assert.Empty(t, f.publisher.payloads)
}

func TestAskQuizFailureAbortsBeforeSynthesis(t *testing.T) {
	f := newFixture(0)
	f.gen.errs[quizKey] = &genai.StatusError{StatusCode: 500, Body: "quiz exploded"}

	_, err := f.service.Ask(context.Background(), &dto.AskTutorRequest{Text: "Hello"})

	require.Error(t, err)
	assert.Empty(t, f.store.global)
	assert.Empty(t, f.tts.texts)
}

func TestAskHistoryAlternatesAcrossTurns(t *testing.T) {
	f := newFixture(0)

	for i := 0; i < 3; i++ {
		_, err := f.service.Ask(context.Background(), &dto.AskTutorRequest{
			Text: fmt.Sprintf("question %d", i),
		})
		require.NoError(t, err)
	}

	require.Len(t, f.store.global, 6)
	for i, msg := range f.store.global {
		wantRole := constant.ChatMessageRoleUser
		if i%2 == 1 {
			wantRole = constant.ChatMessageRoleAssistant
		}
		assert.Equal(t, wantRole, msg.Role, "message %d", i)
	}

	// Third turn sees the first two turns in its serialized history.
	lastPrimary := f.gen.calls[4]
	assert.Contains(t, lastPrimary.histories[0].Chat, "question 0")
	assert.Contains(t, lastPrimary.histories[0].Chat, "question 1")
}

func TestAskHistoryLimitKeepsMostRecentTurns(t *testing.T) {
	f := newFixture(2)

	for i := 0; i < 3; i++ {
		_, err := f.service.Ask(context.Background(), &dto.AskTutorRequest{
			Text: fmt.Sprintf("question %d", i),
		})
		require.NoError(t, err)
	}

	// Limit 2 keeps the assistant reply of turn 2 and the new user turn.
	lastPrimary := f.gen.calls[4]
	assert.NotContains(t, lastPrimary.histories[0].Chat, "question 0")
	assert.Contains(t, lastPrimary.histories[0].Chat, "question 2")
}

func TestAskClassroomScopesByUserAndItem(t *testing.T) {
	f := newFixture(0)

	itemId := uuid.New()
	f.store.items[itemId] = &entity.ClassroomItem{Id: itemId, Title: "Loops 101"}

	userA := uuid.New()
	userB := uuid.New()

	_, err := f.service.AskClassroom(context.Background(), userA, &dto.AskTutorRequest{
		Text:    "Hello from A",
		VideoId: itemId.String(),
	})
	require.NoError(t, err)

	_, err = f.service.AskClassroom(context.Background(), userB, &dto.AskTutorRequest{
		Text:    "Hello from B",
		VideoId: itemId.String(),
	})
	require.NoError(t, err)

	require.Len(t, f.store.classroom, 4)
	for _, msg := range f.store.classroom {
		require.NotNil(t, msg.ClassroomItemId)
		assert.Equal(t, itemId, *msg.ClassroomItemId)
	}

	// User B's prompt history must not leak user A's turns.
	bPrimary := f.gen.calls[2]
	assert.NotContains(t, bPrimary.histories[0].Chat, "Hello from A")
	assert.Contains(t, bPrimary.histories[0].Chat, "Hello from B")
}

func TestAskClassroomItemLookupMissYieldsNullAssociation(t *testing.T) {
	f := newFixture(0)
	userId := uuid.New()

	res, err := f.service.AskClassroom(context.Background(), userId, &dto.AskTutorRequest{
		Text:    "Hello",
		VideoId: uuid.New().String(), // unknown item
	})

	require.NoError(t, err)
	assert.Equal(t, "Hi there!", res.AiText)
	require.Len(t, f.store.classroom, 2)
	for _, msg := range f.store.classroom {
		assert.Nil(t, msg.ClassroomItemId)
		assert.Equal(t, userId, msg.UserId)
	}
}

func TestAskClassroomBadVideoIdYieldsNullAssociation(t *testing.T) {
	f := newFixture(0)

	_, err := f.service.AskClassroom(context.Background(), uuid.New(), &dto.AskTutorRequest{
		Text:    "Hello",
		VideoId: "not-a-uuid",
	})

	require.NoError(t, err)
	require.Len(t, f.store.classroom, 2)
	assert.Nil(t, f.store.classroom[0].ClassroomItemId)
}

func TestGetHistoryReturnsOldestFirst(t *testing.T) {
	f := newFixture(0)

	_, err := f.service.Ask(context.Background(), &dto.AskTutorRequest{Text: "Hello"})
	require.NoError(t, err)

	history, err := f.service.GetHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, history[0].Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, history[1].Role)
}
