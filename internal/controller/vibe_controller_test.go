package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"vibewise-be/internal/dto"
	"vibewise-be/internal/pkg/serverutils"
	"vibewise-be/internal/service"
	"vibewise-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVibeService struct {
	suggestions []string
	recommend   *dto.RecommendResponse
	err         error

	lastSessionID string
	lastQuery     string
	lastTopK      int
}

func (f *fakeVibeService) Autocomplete(_ context.Context, query string) ([]string, error) {
	f.lastQuery = query
	return f.suggestions, f.err
}

func (f *fakeVibeService) Recommend(_ context.Context, sessionID, query string, topK int) (*dto.RecommendResponse, error) {
	f.lastSessionID = sessionID
	f.lastQuery = query
	f.lastTopK = topK
	if f.err != nil {
		return nil, f.err
	}
	return f.recommend, nil
}

type fakeSessionService struct {
	state      *dto.SessionStateResponse
	navigation *dto.NavigationResponse
	watchErr   error

	lastSessionID string
	lastIndex     int
}

func (f *fakeSessionService) State(sessionID string) *dto.SessionStateResponse {
	f.lastSessionID = sessionID
	return f.state
}

func (f *fakeSessionService) RequestSongView(sessionID string) *dto.NavigationResponse {
	f.lastSessionID = sessionID
	return f.navigation
}

func (f *fakeSessionService) BackToSetVibe(sessionID string) *dto.NavigationResponse {
	f.lastSessionID = sessionID
	return f.navigation
}

func (f *fakeSessionService) Watch(_ context.Context, sessionID string, index int) (*dto.NavigationResponse, error) {
	f.lastSessionID = sessionID
	f.lastIndex = index
	if f.watchErr != nil {
		return nil, f.watchErr
	}
	return f.navigation, nil
}

func newTestApp(vibe *fakeVibeService, sess *fakeSessionService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	api := app.Group("/api")
	NewVibeController(vibe, sess).RegisterRoutes(api)

	return app
}

func TestAutocompleteEndpoint(t *testing.T) {
	vibe := &fakeVibeService{suggestions: []string{"yellow coldplay"}}
	app := newTestApp(vibe, &fakeSessionService{})

	req := httptest.NewRequest("GET", "/api/vibe/v1/autocomplete?q=yell", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "yell", vibe.lastQuery)

	var result serverutils.ApiResponse[dto.AutocompleteResponse]
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)
	assert.Equal(t, []string{"yellow coldplay"}, result.Data.Suggestions)
}

func TestRecommendEndpointDefaultsSession(t *testing.T) {
	vibe := &fakeVibeService{recommend: &dto.RecommendResponse{
		Mode:    store.ModeSetVibe,
		Query:   "mellow sunday",
		Results: []store.DisplayRecord{{Song: "Alpha"}},
	}}
	app := newTestApp(vibe, &fakeSessionService{})

	body, _ := json.Marshal(dto.RecommendRequest{Query: "mellow sunday"})
	req := httptest.NewRequest("POST", "/api/vibe/v1/recommend", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "local", vibe.lastSessionID, "missing X-Session-Id maps to the local session")
}

func TestRecommendEndpointSessionHeader(t *testing.T) {
	vibe := &fakeVibeService{recommend: &dto.RecommendResponse{}}
	app := newTestApp(vibe, &fakeSessionService{})

	body, _ := json.Marshal(dto.RecommendRequest{Query: "mellow", TopK: 3})
	req := httptest.NewRequest("POST", "/api/vibe/v1/recommend", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", "desk-42")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "desk-42", vibe.lastSessionID)
	assert.Equal(t, 3, vibe.lastTopK)
}

func TestRecommendEndpointValidation(t *testing.T) {
	app := newTestApp(&fakeVibeService{}, &fakeSessionService{})

	// Missing query fails struct validation before the service is reached.
	req := httptest.NewRequest("POST", "/api/vibe/v1/recommend", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestRecommendEndpointEmptyQuery(t *testing.T) {
	vibe := &fakeVibeService{err: service.ErrEmptyQuery}
	app := newTestApp(vibe, &fakeSessionService{})

	req := httptest.NewRequest("POST", "/api/vibe/v1/recommend", strings.NewReader(`{"query":"   "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestWatchEndpointOutOfRange(t *testing.T) {
	sess := &fakeSessionService{watchErr: service.ErrResultIndexOutOfRange}
	app := newTestApp(&fakeVibeService{}, sess)

	req := httptest.NewRequest("POST", "/api/vibe/v1/watch", strings.NewReader(`{"index":7}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, 7, sess.lastIndex)
}

func TestNavigationEndpointsCarryWarning(t *testing.T) {
	sess := &fakeSessionService{navigation: &dto.NavigationResponse{
		Mode:    store.ModeSetVibe,
		Warning: service.WarningNoVideoSelected,
	}}
	app := newTestApp(&fakeVibeService{}, sess)

	req := httptest.NewRequest("POST", "/api/vibe/v1/navigate/song", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)

	var result serverutils.ApiResponse[dto.NavigationResponse]
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, store.ModeSetVibe, result.Data.Mode)
	assert.Equal(t, service.WarningNoVideoSelected, result.Data.Warning)
}

func TestStateEndpoint(t *testing.T) {
	sess := &fakeSessionService{state: &dto.SessionStateResponse{
		Mode:      store.ModeSong,
		LastQuery: "mellow",
	}}
	app := newTestApp(&fakeVibeService{}, sess)

	req := httptest.NewRequest("GET", "/api/vibe/v1/state", nil)
	req.Header.Set("X-Session-Id", "desk-42")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "desk-42", sess.lastSessionID)

	var result serverutils.ApiResponse[dto.SessionStateResponse]
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, store.ModeSong, result.Data.Mode)
	assert.Equal(t, "mellow", result.Data.LastQuery)
}
