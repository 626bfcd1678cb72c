package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MixMaster_Go/mocks"
)

// MockRoundTripper records every request the session sends to Discord
type MockRoundTripper struct {
	mu       sync.Mutex
	status   int
	requests []capturedRequest
}

type capturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}

	m.mu.Lock()
	m.requests = append(m.requests, capturedRequest{Method: req.Method, Path: req.URL.Path, Body: body})
	status := m.status
	m.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func (m *MockRoundTripper) byMethod(method string) []capturedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []capturedRequest
	for _, r := range m.requests {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

// TestContext bundles a session wired to MockRoundTripper with mocked services
type TestContext struct {
	Session   *discordgo.Session
	Transport *MockRoundTripper
	Mix       *mocks.MockMixService
	Optimizer *mocks.MockOptimizerService
	Deps      *Deps
}

func NewTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	transport := &MockRoundTripper{}
	session.Client = &http.Client{Transport: transport}

	mixSvc := mocks.NewMockMixService(t)
	optSvc := mocks.NewMockOptimizerService(t)

	return &TestContext{
		Session:   session,
		Transport: transport,
		Mix:       mixSvc,
		Optimizer: optSvc,
		Deps:      &Deps{Mix: mixSvc, Optimizer: optSvc},
	}
}

// LastEdit decodes the final PATCH of the deferred response
func (tc *TestContext) LastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	edits := tc.Transport.byMethod(http.MethodPatch)
	require.NotEmpty(t, edits, "expected an interaction response edit")

	var edit discordgo.WebhookEdit
	require.NoError(t, json.Unmarshal(edits[len(edits)-1].Body, &edit))
	return edit
}

// LastEmbed returns the single embed of the final edit
func (tc *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Embeds)
	require.Len(t, *edit.Embeds, 1)
	return (*edit.Embeds)[0]
}

// LastContent returns the text content of the final edit
func (tc *TestContext) LastContent(t *testing.T) string {
	t.Helper()
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Content)
	return *edit.Content
}

// LastResponse decodes the final POST to the interaction callback
func (tc *TestContext) LastResponse(t *testing.T) discordgo.InteractionResponse {
	t.Helper()
	posts := tc.Transport.byMethod(http.MethodPost)
	require.NotEmpty(t, posts)

	var resp discordgo.InteractionResponse
	require.NoError(t, json.Unmarshal(posts[len(posts)-1].Body, &resp))
	return resp
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func focusedOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	opt := stringOption(name, value)
	opt.Focused = true
	return opt
}

func newInteraction(typ discordgo.InteractionType, name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-id",
			AppID: "app-id",
			Token: "interaction-token",
			Type:  typ,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
		},
	}
}

func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return newInteraction(discordgo.InteractionApplicationCommand, name, opts...)
}
