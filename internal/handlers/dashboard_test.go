package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	env *testEnv
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
}

func (s *DashboardHandlerTestSuite) TestGetStats() {
	for _, status := range []models.TaskStatus{
		models.TaskStatusPending,
		models.TaskStatusPending,
		models.TaskStatusInProgress,
		models.TaskStatusCompleted,
	} {
		s.Require().NoError(s.env.db.Create(&models.Task{Title: "t", Status: status}).Error)
	}
	s.Require().NoError(s.env.db.Create(&models.Client{Name: "Acme"}).Error)
	s.Require().NoError(s.env.db.Create(&models.Client{Name: "Globex"}).Error)
	s.Require().NoError(s.env.db.Create(&models.TeamMember{Name: "Dana", Email: "d@e.com"}).Error)

	c, w := testContext(s.T(), "GET", "/api/dashboard/stats", nil)
	s.env.dashboard.GetStats(c)
	s.Equal(http.StatusOK, w.Code)

	var stats services.DashboardStats
	decodeBody(s.T(), w, &stats)
	s.Equal(int64(4), stats.TotalTasks)
	s.Equal(int64(2), stats.TotalClients)
	s.Equal(int64(1), stats.TotalTeamMembers)
	s.Equal(int64(2), stats.TasksByStatus.Pending)
	s.Equal(int64(1), stats.TasksByStatus.InProgress)
	s.Equal(int64(1), stats.TasksByStatus.Completed)
}

func (s *DashboardHandlerTestSuite) TestGetStats_UnrecognizedStatusCountsOnlyInTotal() {
	task := &models.Task{Title: "legacy"}
	s.Require().NoError(s.env.db.Create(task).Error)
	s.Require().NoError(s.env.db.Exec("UPDATE tasks SET status = ? WHERE id = ?", "archived", task.ID).Error)

	c, w := testContext(s.T(), "GET", "/api/dashboard/stats", nil)
	s.env.dashboard.GetStats(c)
	s.Equal(http.StatusOK, w.Code)

	var stats services.DashboardStats
	decodeBody(s.T(), w, &stats)
	s.Equal(int64(1), stats.TotalTasks)
	s.Zero(stats.TasksByStatus.Pending)
	s.Zero(stats.TasksByStatus.InProgress)
	s.Zero(stats.TasksByStatus.Completed)
}

func (s *DashboardHandlerTestSuite) TestGetStats_Empty() {
	c, w := testContext(s.T(), "GET", "/api/dashboard/stats", nil)
	s.env.dashboard.GetStats(c)
	s.Equal(http.StatusOK, w.Code)

	var stats services.DashboardStats
	decodeBody(s.T(), w, &stats)
	s.Zero(stats.TotalTasks)
	s.Zero(stats.TotalClients)
	s.Zero(stats.TotalTeamMembers)
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
