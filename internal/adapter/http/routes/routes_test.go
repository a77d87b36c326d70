package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rawasi_matching/internal/adapter/persistence/repository"
	"rawasi_matching/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t      *testing.T
	router http.Handler
}

func (a apiClient) do(method, path string, body any, out any) int {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	if out != nil {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func newTestAPI(t *testing.T) apiClient {
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Server: config.ServerConfig{Port: "8080", CORSAllowedOrigins: []string{"*"}}}
	router := NewRouter(cfg, Dependencies{
		Sessions: repository.NewSessionRedisRepository(client, time.Hour),
		Catalog:  repository.NewFallbackProviderCatalog(),
	})
	return apiClient{t: t, router: router}
}

type sessionBody struct {
	ID         string   `json:"id"`
	Stage      string   `json:"stage"`
	WizardStep int      `json:"wizard_step"`
	Compare    []string `json:"compare"`
	Flow       struct {
		HasProject bool `json:"has_project"`
	} `json:"flow"`
}

type navigationBody struct {
	Stage      string `json:"stage"`
	Redirected bool   `json:"redirected"`
}

func TestPing(t *testing.T) {
	api := newTestAPI(t)
	var pong string
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/v1/ping", nil, &pong))
	assert.Equal(t, "pong", pong)
}

func TestOwnerFlow(t *testing.T) {
	api := newTestAPI(t)

	var s sessionBody
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/v1/sessions", nil, &s))
	require.NotEmpty(t, s.ID)
	base := "/v1/sessions/" + s.ID
	assert.Equal(t, "project", s.Stage)

	// Guards redirect before a project exists.
	var nav navigationBody
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/navigate", map[string]string{"stage": "recs"}, &nav))
	assert.Equal(t, "project", nav.Stage)
	assert.True(t, nav.Redirected)

	var apiErr map[string]string
	assert.Equal(t, http.StatusUnprocessableEntity, api.do(http.MethodPost, base+"/draft/next", nil, &apiErr))
	assert.Equal(t, "PROJECT_NAME_REQUIRED", apiErr["code"])

	draft := map[string]any{
		"name": "Tower", "type": "Residential", "size_sqm": 1500, "location": "Riyadh",
		"budget": 2000000, "timeline_months": 12, "complexity": "medium", "tech_needs": []string{"BIM"},
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, base+"/draft", draft, &s))

	assert.Equal(t, http.StatusConflict, api.do(http.MethodPost, base+"/draft/submit", nil, &apiErr))
	for i := 0; i < 4; i++ {
		require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/draft/next", nil, &s))
	}
	assert.Equal(t, 4, s.WizardStep)

	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/draft/submit", nil, &s))
	assert.Equal(t, "recs", s.Stage)
	assert.True(t, s.Flow.HasProject)

	var est map[string]float64
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, base+"/estimate", nil, &est))
	assert.Equal(t, 6000000.0, est["est_cost"])
	assert.Equal(t, 3.0, est["est_time_months"])
	assert.Equal(t, 1.0, est["risk"])

	var recs struct {
		Source      string   `json:"source"`
		TechOptions []string `json:"tech_options"`
		Items       []struct {
			Provider struct {
				ID string `json:"id"`
			} `json:"provider"`
			Score float64 `json:"score"`
		} `json:"items"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, base+"/recommendations", nil, &recs))
	assert.Equal(t, "fallback", recs.Source)
	require.Len(t, recs.Items, 4)
	assert.Equal(t, []string{"prv-zen", "prv-sky", "prv-ora", "prv-neo"},
		[]string{recs.Items[0].Provider.ID, recs.Items[1].Provider.ID, recs.Items[2].Provider.ID, recs.Items[3].Provider.ID})
	assert.Equal(t, 0.6365, recs.Items[0].Score)

	require.Equal(t, http.StatusOK, api.do(http.MethodGet, base+"/recommendations?tech=Robotics&q=ZEN", nil, &recs))
	require.Len(t, recs.Items, 1)
	assert.Equal(t, "prv-zen", recs.Items[0].Provider.ID)

	// Compare needs a selection.
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/navigate", map[string]string{"action": "proceed-to-compare"}, &nav))
	assert.Equal(t, "recs", nav.Stage)
	assert.True(t, nav.Redirected)

	for _, id := range []string{"prv-neo", "prv-sky", "prv-zen", "prv-ora"} {
		require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/compare/"+id, nil, &s))
	}
	assert.Equal(t, []string{"prv-sky", "prv-zen", "prv-ora"}, s.Compare)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPost, base+"/compare/prv-nope", nil, &apiErr))

	var cmp struct {
		Items []struct {
			Provider struct {
				ID string `json:"id"`
			} `json:"provider"`
		} `json:"items"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, base+"/compare", nil, &cmp))
	require.Len(t, cmp.Items, 3)
	assert.Equal(t, "prv-sky", cmp.Items[0].Provider.ID)

	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/navigate", map[string]string{"action": "proceed-to-compare"}, &nav))
	assert.Equal(t, "compare", nav.Stage)
	assert.False(t, nav.Redirected)

	require.Equal(t, http.StatusOK, api.do(http.MethodPut, base+"/picked/prv-zen", nil, &s))
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/navigate", map[string]string{"stage": "messages"}, &nav))
	assert.Equal(t, "messages", nav.Stage)

	var dash struct {
		Demo        bool   `json:"demo"`
		ProjectName string `json:"project_name"`
		TotalWeeks  int    `json:"total_weeks"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, base+"/dashboard", nil, &dash))
	assert.False(t, dash.Demo)
	assert.Equal(t, "Tower", dash.ProjectName)
	assert.Equal(t, 48, dash.TotalWeeks)

	require.Equal(t, http.StatusOK, api.do(http.MethodDelete, base, nil, &s))
	assert.Equal(t, "project", s.Stage)
	assert.Empty(t, s.Compare)
	assert.False(t, s.Flow.HasProject)
}

func TestDraftTechAndCompareStage(t *testing.T) {
	api := newTestAPI(t)

	var s struct {
		sessionBody
		Draft struct {
			TechNeeds []string `json:"tech_needs"`
		} `json:"draft"`
		Cities []string `json:"cities"`
	}
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/v1/sessions", nil, &s))
	base := "/v1/sessions/" + s.ID
	assert.Contains(t, s.Cities, "Jeddah")

	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/draft/tech/BIM", nil, &s))
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/draft/tech/3D%20Printing", nil, &s))
	assert.Equal(t, []string{"BIM", "3D Printing"}, s.Draft.TechNeeds)
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/draft/tech/BIM", nil, &s))
	assert.Equal(t, []string{"3D Printing"}, s.Draft.TechNeeds)

	draft := map[string]any{
		"name": "Villa", "type": "Residential", "size_sqm": 800, "location": "Jeddah",
		"budget": 1500000, "timeline_months": 10, "complexity": "low", "tech_needs": s.Draft.TechNeeds,
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, base+"/draft", draft, &s))
	for i := 0; i < 4; i++ {
		require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/draft/next", nil, &s))
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/draft/submit", nil, &s))

	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/compare/prv-neo", nil, &s))
	var nav navigationBody
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/navigate", map[string]string{"stage": "compare"}, &nav))
	require.Equal(t, "compare", nav.Stage)

	// Dropping the only compared provider moves the owner back to recs.
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/compare/prv-neo", nil, &s))
	assert.Empty(t, s.Compare)
	assert.Equal(t, "recs", s.Stage)

	var got struct {
		Stage string `json:"stage"`
		Flow  struct {
			CanEnter map[string]bool `json:"can_enter"`
		} `json:"flow"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, base, nil, &got))
	assert.Equal(t, "recs", got.Stage)
	assert.True(t, got.Flow.CanEnter[got.Stage])
}

func TestUnknownSession(t *testing.T) {
	api := newTestAPI(t)
	var apiErr map[string]string
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/v1/sessions/missing", nil, &apiErr))
	assert.Equal(t, "SESSION_NOT_FOUND", apiErr["code"])
}

func TestConnect_FileCatalogOverRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := &config.Config{
		Sessions: config.SessionConfig{Store: config.SessionStoreRedis, TTL: time.Hour},
		Redis:    config.RedisConfig{Addr: mr.Addr()},
		Catalog:  config.CatalogConfig{Source: config.CatalogSourceFile},
	}
	deps, closeAll, err := Connect(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer closeAll()

	assert.NotNil(t, deps.Sessions)
	assert.Equal(t, "fallback", deps.Catalog.Source())
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	c := corsConfig([]string{"http://a.test"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"http://a.test"}, c.AllowOrigins)
}
