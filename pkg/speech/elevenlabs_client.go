package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

// Client calls the ElevenLabs text-to-speech endpoint. The reply text is
// wrapped in a prosody markup template before synthesis.
type Client struct {
	baseURL    string
	apiKey     string
	voiceId    string
	settings   VoiceSettings
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, voiceId string, settings VoiceSettings) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		voiceId:    voiceId,
		settings:   settings,
		httpClient: &http.Client{},
	}
}

// Synthesize converts text to audio bytes. A non-200 status is reported as
// an error; callers decide whether that is fatal (it is not for the tutor
// flow, which degrades to a text-only reply).
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload := synthesizeRequest{
		Text:          fmt.Sprintf("<speak><prosody rate='85%%' pitch='0%%' volume='100%%'>%s</prosody></speak>", text),
		VoiceSettings: c.settings,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.baseURL, c.voiceId)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	return resBody, nil
}
