package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mnada/internal/infrastructure/assets"
	"mnada/internal/infrastructure/config"
	"mnada/internal/infrastructure/platform"
	sharedConfig "mnada/internal/shared/config"
	"mnada/internal/shared/logger"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{
			Host:           "127.0.0.1",
			Port:           8080,
			Mode:           "test",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Content: sharedConfig.ContentConfig{AssetBasePath: "/images"},
	}

	profiles := platform.NewRegistry("", logger.NewLogger())
	require.NoError(t, profiles.Load())

	router := NewRouter(cfg, profiles, assets.NewCatalog(cfg.Content.AssetBasePath))
	router.SetupRoutes(cfg)
	return router
}

func performJSON(t *testing.T, router *Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)
	return w
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var envelope apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := performJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestGetCatalog(t *testing.T) {
	router := newTestRouter(t)

	w := performJSON(t, router, http.MethodGet, "/api/v1/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.Success)

	var data struct {
		Crops []struct {
			Name string `json:"name"`
			Code string `json:"code"`
		} `json:"crops"`
		Regions   []struct{ Name, Code string } `json:"regions"`
		Unions    []string                      `json:"unions"`
		Languages []string                      `json:"languages"`
		Platforms []string                      `json:"platforms"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Len(t, data.Crops, 13)
	assert.Len(t, data.Regions, 28)
	assert.Len(t, data.Unions, 11)
	assert.Equal(t, []string{"sw", "en"}, data.Languages)
	assert.Equal(t, []string{"facebook", "instagram"}, data.Platforms)
}

func TestGenerateAnnouncementEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/content/announcements", map[string]any{
		"regions": []string{"SINGIDA", "DODOMA"},
		"crop":    "CHICK PEA",
		"date":    "2025-07-09",
		"time":    "10:30",
	})
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	require.True(t, envelope.Success)

	var data struct {
		VideoTitle string `json:"video_title"`
		Facebook   string `json:"facebook"`
		Instagram  string `json:"instagram"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Contains(t, data.VideoTitle, "[LIVE] CHICK PEA TRADE SESSION")
	assert.Contains(t, data.Facebook, "#chickpea")
	assert.Contains(t, data.Instagram, "@ikulu_mawasiliano")
}

func TestGenerateAnnouncementRejectsBadTime(t *testing.T) {
	router := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/content/announcements", map[string]any{
		"regions": []string{"SINGIDA"},
		"crop":    "COFFEE",
		"date":    "2025-07-09",
		"time":    "25:99",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "bad_request", envelope.Error.Type)
}

func TestGenerateAnnouncementRejectsUnknownCrop(t *testing.T) {
	router := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/content/announcements", map[string]any{
		"regions": []string{"SINGIDA"},
		"crop":    "MAIZE",
		"date":    "2025-07-09",
		"time":    "10:30",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "validation_error", envelope.Error.Type)
}

func TestGetDefaultLayoutEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := performJSON(t, router, http.MethodGet, "/api/v1/posters/layout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "#fefadf")
}

func TestComposePosterEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/posters/compose", map[string]any{
		"regions":   []string{"SINGIDA"},
		"crop":      "COFFEE",
		"date":      "2025-07-09",
		"time":      "10:30",
		"languages": []string{"sw", "en"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	require.True(t, envelope.Success)

	var data struct {
		Posters []struct {
			Language string `json:"language"`
			Patch    struct {
				Heading string `json:"heading"`
			} `json:"patch"`
		} `json:"posters"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	require.Len(t, data.Posters, 2)
	assert.Equal(t, "sw", data.Posters[0].Language)
	assert.Equal(t, "KAHAWA", data.Posters[0].Patch.Heading)
	assert.Equal(t, "en", data.Posters[1].Language)
	assert.Equal(t, "COFFEE", data.Posters[1].Patch.Heading)
}

func TestExportPosterEndpoint(t *testing.T) {
	router := newTestRouter(t)

	layoutResp := performJSON(t, router, http.MethodGet, "/api/v1/posters/layout", nil)
	require.Equal(t, http.StatusOK, layoutResp.Code)
	layoutEnvelope := decodeEnvelope(t, layoutResp)

	var layout map[string]any
	require.NoError(t, json.Unmarshal(layoutEnvelope.Data, &layout))

	w := performJSON(t, router, http.MethodPost, "/api/v1/posters/export", map[string]any{
		"crop": "CHICK PEA",
		"date": "2025-07-09",
		"variants": []map[string]any{
			{"language": "sw", "layout": layout},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "poster-chick-pea-sw-2025-07-09.png")
}

func TestGeneratePriceBoardEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/prices/board", map[string]any{
		"date": "2025-07-09",
		"rows": []map[string]any{
			{"commodity": "COFFEE", "region": "SINGIDA", "union": "TANECU", "high_price": "8500", "low_price": "7200", "weight": "12000"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CF-SING")
	assert.Contains(t, w.Body.String(), "commodity-prices-2025-07-09.png")
}

func TestGeneratePriceBoardRejectsTooManyRows(t *testing.T) {
	router := newTestRouter(t)

	rows := make([]map[string]any, 5)
	for i := range rows {
		rows[i] = map[string]any{"commodity": "COFFEE", "region": "SINGIDA"}
	}

	w := performJSON(t, router, http.MethodPost, "/api/v1/prices/board", map[string]any{
		"date": "2025-07-09",
		"rows": rows,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
