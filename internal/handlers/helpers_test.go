package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"opsboard/internal/models"
	"opsboard/internal/repository"
	"opsboard/internal/revalidate"
	"opsboard/internal/services"
)

// testEnv wires handlers against an in-memory database and an in-memory
// invalidator, mirroring the production wiring in cmd/server.
type testEnv struct {
	db          *gorm.DB
	invalidator *revalidate.MemoryInvalidator

	auth      *AuthHandler
	clients   *ClientHandler
	tasks     *TaskHandler
	team      *TeamHandler
	dashboard *DashboardHandler

	authService *services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.TeamMember{},
		&models.Task{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	invalidator := revalidate.NewMemoryInvalidator()

	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)

	authService := services.NewAuthService(userRepo)
	clientService := services.NewClientService(clientRepo, invalidator, log)
	taskService := services.NewTaskService(taskRepo, invalidator, log)
	teamService := services.NewTeamService(teamRepo, invalidator, log)
	dashboardService := services.NewDashboardService(taskRepo, clientRepo, teamRepo, log)

	gin.SetMode(gin.TestMode)

	return &testEnv{
		db:          db,
		invalidator: invalidator,
		auth:        NewAuthHandler(authService),
		clients:     NewClientHandler(clientService),
		tasks:       NewTaskHandler(taskService),
		team:        NewTeamHandler(teamService),
		dashboard:   NewDashboardHandler(dashboardService),
		authService: authService,
	}
}

// testContext builds a gin context around a real request so binding and
// c.Request.Context() behave as in production.
func testContext(t *testing.T, method, url string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, url, reader)
	if body != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}

	return c, w
}

func setParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func requireSuccess(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result map[string]interface{}
	decodeBody(t, w, &result)
	require.Equal(t, true, result["success"])
}
