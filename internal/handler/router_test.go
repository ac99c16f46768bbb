//go:build unit

package handler_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/handler"
	"smart-parking/internal/handler/api"
	"smart-parking/internal/handler/middleware"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/pkg/metrics"
	"smart-parking/internal/usecase/queries"
	"smart-parking/tests/common/httptest"
	commandsmock "smart-parking/tests/mock/commands"
	queriesmock "smart-parking/tests/mock/queries"
	usecasemock "smart-parking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

type RouterTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	lotCmds   *commandsmock.MockLotCommands
	lotQs     *queriesmock.MockLotQueries
	spotCmds  *commandsmock.MockSpotCommands
	validator *usecasemock.MockTokenValidator
	cfg       config.Config
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.lotCmds = commandsmock.NewMockLotCommands(s.mockCtrl)
	s.lotQs = queriesmock.NewMockLotQueries(s.mockCtrl)
	s.spotCmds = commandsmock.NewMockSpotCommands(s.mockCtrl)
	s.validator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.cfg = config.NewTestConfig()
	s.cfg.Metrics = config.MetricsConfig{Enabled: true, Path: "/metrics"}

	s.validator.EXPECT().ValidateToken(adminToken).Return(uuid.New(), user.RoleAdmin, nil).AnyTimes()
	s.validator.EXPECT().ValidateToken(userToken).Return(uuid.New(), user.RoleUser, nil).AnyTimes()
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RouterTestSuite) newRouter() *gin.Engine {
	engine := gin.New()
	h := handler.NewHandlers(
		api.NewAuthHandler(commandsmock.NewMockAuthCommands(s.mockCtrl), queriesmock.NewMockUserQueries(s.mockCtrl), s.cfg),
		api.NewLotHandler(s.lotCmds, s.lotQs),
		api.NewSpotHandler(s.spotCmds, queriesmock.NewMockSpotQueries(s.mockCtrl)),
	)
	handler.NewRouter(engine, s.cfg, middleware.NewLogger(s.cfg.Log), metrics.New(), h,
		middleware.NewAuthMiddleware(s.validator))
	return engine
}

func (s *RouterTestSuite) TestHealth() {
	router := s.newRouter()
	for _, path := range []string{"/health", "/api/health"} {
		w := httptest.PerformRequest(s.T(), router, http.MethodGet, path, nil, "")
		assert.Equal(s.T(), http.StatusOK, w.Code, path)
		assert.Contains(s.T(), w.Body.String(), `"status":"OK"`)
	}
}

func (s *RouterTestSuite) TestLotRoutesRequireAuth() {
	router := s.newRouter()

	w := httptest.PerformRequest(s.T(), router, http.MethodGet, "/api/lots", nil, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Not authorized")
}

func (s *RouterTestSuite) TestReadsAllowedForUsers() {
	s.lotQs.EXPECT().List(gomock.Any()).Return([]*queries.LotView{}, nil).Times(2)
	router := s.newRouter()

	for _, path := range []string{"/api/lots", "/api/parking-lots"} {
		w := httptest.PerformRequest(s.T(), router, http.MethodGet, path, nil, userToken)
		env := httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		require.NotNil(s.T(), env.Count, path)
		assert.Zero(s.T(), *env.Count)
	}
}

func (s *RouterTestSuite) TestWritesRequireAdmin() {
	router := s.newRouter()
	id := uuid.NewString()

	writes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/lots"},
		{http.MethodPut, "/api/lots/" + id},
		{http.MethodDelete, "/api/lots/" + id},
		{http.MethodPost, "/api/parking-lots"},
		{http.MethodPost, "/api/slots"},
		{http.MethodPut, "/api/slots/" + id + "/status"},
		{http.MethodDelete, "/api/slots/" + id},
		{http.MethodPost, "/api/slots/simulate/" + id},
	}
	for _, tt := range writes {
		w := httptest.PerformRequest(s.T(), router, tt.method, tt.path, map[string]any{}, userToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "User role user is not authorized to access this route")
	}
}

func (s *RouterTestSuite) TestAdminReachesHandler() {
	id := uuid.New()
	s.lotCmds.EXPECT().Delete(gomock.Any(), id).Return(nil)
	router := s.newRouter()

	w := httptest.PerformRequest(s.T(), router, http.MethodDelete, "/api/lots/"+id.String(), nil, adminToken)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	router := s.newRouter()

	w := httptest.PerformRequest(s.T(), router, http.MethodGet, "/api/nope", nil, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Route not found")

	w = httptest.PerformRequest(s.T(), router, http.MethodGet, "/dashboard", nil, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Route not found")
}

func (s *RouterTestSuite) TestStaticFrontend() {
	dir := s.T().TempDir()
	require.NoError(s.T(), os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(s.T(), os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))
	s.cfg.Server.StaticDir = dir
	router := s.newRouter()

	get := func(path string) *nethttptest.ResponseRecorder {
		return httptest.PerformRequest(s.T(), router, http.MethodGet, path, nil, "")
	}

	w := get("/app.js")
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "console.log(1)", w.Body.String())

	w = get("/lots/123")
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Contains(s.T(), w.Body.String(), "app")

	w = get("/api/unknown")
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Route not found")
}

func (s *RouterTestSuite) TestMetricsEndpoint() {
	router := s.newRouter()
	httptest.PerformRequest(s.T(), router, http.MethodGet, "/health", nil, "")

	w := httptest.PerformRequest(s.T(), router, http.MethodGet, "/metrics", nil, "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Contains(s.T(), w.Body.String(), "http_requests_total")
}

func (s *RouterTestSuite) TestCORSPreflight() {
	router := s.newRouter()

	w := httptest.Do(s.T(), router, httptest.Request{
		Method: http.MethodOptions,
		Path:   "/api/lots",
		Headers: map[string]string{
			"Origin":                        "http://localhost:5173",
			"Access-Control-Request-Method": http.MethodPost,
		},
	})

	assert.Equal(s.T(), http.StatusNoContent, w.Code)
	httptest.AssertHeaders(s.T(), w, map[string]string{
		"Access-Control-Allow-Origin":      "http://localhost:5173",
		"Access-Control-Allow-Credentials": "true",
	})
	assert.Contains(s.T(), strings.ToLower(w.Header().Get("Access-Control-Allow-Headers")), "x-request-id")
}

func (s *RouterTestSuite) TestCORSExposesRequestID() {
	router := s.newRouter()

	w := httptest.Do(s.T(), router, httptest.Request{
		Method:  http.MethodGet,
		Path:    "/health",
		Headers: map[string]string{"Origin": "http://localhost:3000"},
	})

	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Contains(s.T(), strings.ToLower(w.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
}
