package speech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	var gotPath, gotApiKey string
	var gotPayload synthesizeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotApiKey = r.Header.Get("xi-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte("AUDIO"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "el-key", "voice-1", VoiceSettings{
		Stability:       0.4,
		SimilarityBoost: 0.8,
	})
	audio, err := client.Synthesize(context.Background(), "Hi there!")

	require.NoError(t, err)
	assert.Equal(t, []byte("AUDIO"), audio)
	assert.Equal(t, "/text-to-speech/voice-1", gotPath)
	assert.Equal(t, "el-key", gotApiKey)
	assert.Equal(t, "<speak><prosody rate='85%' pitch='0%' volume='100%'>Hi there!</prosody></speak>", gotPayload.Text)
	assert.Equal(t, 0.4, gotPayload.VoiceSettings.Stability)
	assert.Equal(t, 0.8, gotPayload.VoiceSettings.SimilarityBoost)
}

func TestSynthesizeUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("voice busy"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "el-key", "voice-1", VoiceSettings{})
	audio, err := client.Synthesize(context.Background(), "Hi there!")

	require.Error(t, err)
	assert.Nil(t, audio)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "voice busy")
}
