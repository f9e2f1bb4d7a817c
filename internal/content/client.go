package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tartilapp/tartil/internal/model"
)

// Timeout constants
const (
	DefaultFetchTimeout = 30 * time.Second
)

// API defaults
const (
	DefaultBaseURL = "https://api.alquran.cloud/v1"

	// TextEditionID is the original-script text edition every bundle uses.
	TextEditionID = "quran-uthmani"

	// TranslationEditionID is the translation edition every bundle uses.
	TranslationEditionID = "en.asad"

	// TranslationPlaceholder fills positions whose translation is missing
	// instead of failing the whole bundle.
	TranslationPlaceholder = "(translation unavailable)"

	okCode = 200
)

// envelope is the API's uniform response wrapper. Data holds either the
// payload or, on errors, a plain message string.
type envelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// surahContent is one edition's rendering of a surah in a multi-edition
// response.
type surahContent struct {
	model.Surah
	Edition model.Edition `json:"edition"`
	Ayahs   []model.Ayah  `json:"ayahs"`
}

// Client fetches surah listings, edition listings, and content bundles from
// an alquran.cloud-compatible REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        zerolog.Logger
}

// NewClient creates a content client against the given base URL. An empty
// baseURL selects the public API.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    DefaultFetchTimeout,
		log:        log.With().Str("component", "content").Logger(),
	}
}

// SetTimeout sets the per-request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// ListSurahs returns the full ordered chapter list.
func (c *Client) ListSurahs(ctx context.Context) ([]model.Surah, error) {
	raw, err := c.get(ctx, "/surah")
	if err != nil {
		return nil, err
	}

	var surahs []model.Surah
	if err := json.Unmarshal(raw, &surahs); err != nil {
		return nil, fmt.Errorf("decode surah list: %w", err)
	}
	if len(surahs) == 0 {
		return nil, &DataError{Component: "surah list"}
	}
	return surahs, nil
}

// ListEditions returns the available verse-by-verse Arabic audio narrations.
func (c *Client) ListEditions(ctx context.Context) ([]model.Edition, error) {
	raw, err := c.get(ctx, "/edition?format=audio&language=ar&type=versebyverse")
	if err != nil {
		return nil, err
	}

	var editions []model.Edition
	if err := json.Unmarshal(raw, &editions); err != nil {
		return nil, fmt.Errorf("decode edition list: %w", err)
	}

	// The server already filters, but stale mirrors have returned mixed
	// lists, so filter again here.
	narrations := editions[:0]
	for _, e := range editions {
		if e.IsAudioNarration() {
			narrations = append(narrations, e)
		}
	}
	if len(narrations) == 0 {
		return nil, &DataError{Component: "audio narration editions"}
	}
	return narrations, nil
}

// GetBundle fetches the audio, text, and translation renderings of a surah in
// one multi-edition request and assembles them into an index-aligned bundle.
func (c *Client) GetBundle(ctx context.Context, surahNumber int, editionID string) (*model.Bundle, error) {
	path := fmt.Sprintf("/surah/%d/editions/%s,%s,%s",
		surahNumber, editionID, TextEditionID, TranslationEditionID)

	raw, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var renderings []surahContent
	if err := json.Unmarshal(raw, &renderings); err != nil {
		return nil, fmt.Errorf("decode surah content: %w", err)
	}

	audio := findRendering(renderings, editionID)
	if audio == nil {
		return nil, &DataError{Component: fmt.Sprintf("audio narration %q", editionID)}
	}
	text := findRendering(renderings, TextEditionID)
	if text == nil {
		return nil, &DataError{Component: fmt.Sprintf("original text %q", TextEditionID)}
	}
	translation := findRendering(renderings, TranslationEditionID)
	if translation == nil {
		return nil, &DataError{Component: fmt.Sprintf("translation %q", TranslationEditionID)}
	}

	if len(audio.Ayahs) == 0 {
		return nil, &DataError{Component: fmt.Sprintf("ayahs for surah %d", surahNumber)}
	}
	if len(text.Ayahs) != len(audio.Ayahs) {
		return nil, &DataError{Component: fmt.Sprintf("aligned original text for surah %d", surahNumber)}
	}

	ayahs := make([]model.Ayah, len(audio.Ayahs))
	for i, a := range audio.Ayahs {
		a.Text = text.Ayahs[i].Text
		a.Translation = TranslationPlaceholder
		if i < len(translation.Ayahs) && translation.Ayahs[i].Text != "" {
			a.Translation = translation.Ayahs[i].Text
		}
		ayahs[i] = a
	}

	return &model.Bundle{
		Surah:     audio.Surah,
		EditionID: editionID,
		Ayahs:     ayahs,
	}, nil
}

// get performs one API call and unwraps the response envelope.
func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := uuid.NewString()
	url := c.baseURL + path
	c.log.Debug().Str("request_id", requestID).Str("url", url).Msg("fetching")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}

	if env.Code != okCode {
		apiErr := &APIError{StatusCode: env.Code, Message: env.Status}
		// Error envelopes carry the human-readable message in data.
		var msg string
		if err := json.Unmarshal(env.Data, &msg); err == nil && msg != "" {
			apiErr.Message = msg
		}
		c.log.Warn().Str("request_id", requestID).Int("code", env.Code).Str("message", apiErr.Message).Msg("api error")
		return nil, apiErr
	}

	return env.Data, nil
}

// findRendering locates one edition's rendering in a multi-edition response.
func findRendering(renderings []surahContent, editionID string) *surahContent {
	for i := range renderings {
		if renderings[i].Edition.ID == editionID {
			return &renderings[i]
		}
	}
	return nil
}
