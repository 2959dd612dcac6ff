package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"learnz-tutor-be/internal/dto"
	"learnz-tutor-be/internal/pkg/serverutils"
	"learnz-tutor-be/pkg/genai"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTutorService struct {
	askRes     *dto.AskTutorResponse
	askErr     error
	askReq     *dto.AskTutorRequest
	askUserId  *uuid.UUID
	history    []*dto.TutorHistoryResponse
	historyErr error
}

func (s *stubTutorService) Ask(ctx context.Context, request *dto.AskTutorRequest) (*dto.AskTutorResponse, error) {
	s.askReq = request
	return s.askRes, s.askErr
}

func (s *stubTutorService) AskClassroom(ctx context.Context, userId uuid.UUID, request *dto.AskTutorRequest) (*dto.AskTutorResponse, error) {
	s.askReq = request
	s.askUserId = &userId
	return s.askRes, s.askErr
}

func (s *stubTutorService) GetHistory(ctx context.Context) ([]*dto.TutorHistoryResponse, error) {
	return s.history, s.historyErr
}

func (s *stubTutorService) GetClassroomHistory(ctx context.Context, userId uuid.UUID, videoId string) ([]*dto.TutorHistoryResponse, error) {
	s.askUserId = &userId
	return s.history, s.historyErr
}

// newTestApp mirrors the server wiring: error middleware first, then the
// controller routes under /api.
func newTestApp(svc *stubTutorService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewTutorController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]interface{}, headers map[string]string) (int, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestAskReturnsRawContractShape(t *testing.T) {
	audio := "QVVESU8=" // base64 audio payload
	svc := &stubTutorService{
		askRes: &dto.AskTutorResponse{
			AiText:  "Hi there!",
			AiAudio: &audio,
			AiQuiz:  "None",
		},
	}
	app := newTestApp(svc)

	status, body := postJSON(t, app, "/api/tutor/v1/ask", map[string]interface{}{
		"text":         "Hello",
		"videoContext": "Intro to loops",
	}, nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Hi there!", body["ai_text"])
	assert.Equal(t, audio, body["ai_audio"])
	assert.Equal(t, "None", body["ai_quiz"])

	// ai_reasoning is always present and always null.
	reasoning, present := body["ai_reasoning"]
	assert.True(t, present)
	assert.Nil(t, reasoning)

	require.NotNil(t, svc.askReq)
	assert.Equal(t, "Hello", svc.askReq.Text)
	assert.Equal(t, "Intro to loops", svc.askReq.VideoContext)
}

func TestAskNullAudioStaysNull(t *testing.T) {
	svc := &stubTutorService{
		askRes: &dto.AskTutorResponse{AiText: "Hi there!", AiQuiz: "None"},
	}
	app := newTestApp(svc)

	status, body := postJSON(t, app, "/api/tutor/v1/ask", map[string]interface{}{"text": "Hello"}, nil)

	assert.Equal(t, fiber.StatusOK, status)
	audio, present := body["ai_audio"]
	assert.True(t, present)
	assert.Nil(t, audio)
}

func TestAskUpstreamFailureKeepsErrorContract(t *testing.T) {
	svc := &stubTutorService{
		askErr: &genai.StatusError{StatusCode: 429, Body: `{"error": "quota exceeded"}`},
	}
	app := newTestApp(svc)

	status, body := postJSON(t, app, "/api/tutor/v1/ask", map[string]interface{}{"text": "Hello"}, nil)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Gemini API failed", body["error"])
	assert.Equal(t, `{"error": "quota exceeded"}`, body["details"])
}

func TestAskEmptyBodyDefaultsToEmptyMessage(t *testing.T) {
	svc := &stubTutorService{
		askRes: &dto.AskTutorResponse{AiText: "Hi there!", AiQuiz: "None"},
	}
	app := newTestApp(svc)

	status, _ := postJSON(t, app, "/api/tutor/v1/ask", map[string]interface{}{}, nil)

	assert.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, svc.askReq)
	assert.Equal(t, "", svc.askReq.Text)
	assert.Equal(t, "", svc.askReq.VideoContext)
}

func TestHistoryUsesEnvelope(t *testing.T) {
	svc := &stubTutorService{
		history: []*dto.TutorHistoryResponse{
			{Id: uuid.New(), Role: "user", Content: "Hello", CreatedAt: time.Now()},
		},
	}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET", "/api/tutor/v1/history", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Success show tutor history", body["message"])
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
}

func TestClassroomAskRequiresToken(t *testing.T) {
	svc := &stubTutorService{}
	app := newTestApp(svc)

	status, body := postJSON(t, app, "/api/tutor/v1/classroom/ask", map[string]interface{}{"text": "Hello"}, nil)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Missing token", body["message"])
	assert.Nil(t, svc.askReq)
}

func TestClassroomAskPassesAuthenticatedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userId := uuid.New()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId.String(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	svc := &stubTutorService{
		askRes: &dto.AskTutorResponse{AiText: "Hi there!", AiQuiz: "None"},
	}
	app := newTestApp(svc)

	status, _ := postJSON(t, app, "/api/tutor/v1/classroom/ask", map[string]interface{}{
		"text":    "Hello",
		"videoId": uuid.New().String(),
	}, map[string]string{"Authorization": "Bearer " + signed})

	assert.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, svc.askUserId)
	assert.Equal(t, userId, *svc.askUserId)
}
