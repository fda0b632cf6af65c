package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"opsboard/internal/models"
)

type TaskHandlerTestSuite struct {
	suite.Suite
	env *testEnv
}

func (s *TaskHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
}

func (s *TaskHandlerTestSuite) createClient(name string) *models.Client {
	client := &models.Client{Name: name}
	s.Require().NoError(s.env.db.Create(client).Error)
	return client
}

func (s *TaskHandlerTestSuite) createMember(name string) *models.TeamMember {
	member := &models.TeamMember{Name: name, Email: name + "@example.com"}
	s.Require().NoError(s.env.db.Create(member).Error)
	return member
}

func (s *TaskHandlerTestSuite) TestCreateTask_OmittedStatusDefaultsPending() {
	c, w := testContext(s.T(), "POST", "/api/tasks", map[string]string{"title": "Write report"})
	s.env.tasks.CreateTask(c)
	requireSuccess(s.T(), w)

	var task models.Task
	s.Require().NoError(s.env.db.First(&task).Error)
	s.Equal(models.TaskStatusPending, task.Status)
	s.Nil(task.Description)
	s.Nil(task.DueDate)
	s.Nil(task.ClientID)
	s.Nil(task.AssignedTo)
}

func (s *TaskHandlerTestSuite) TestCreateTask_AllFields() {
	client := s.createClient("Acme")
	member := s.createMember("Dana")

	c, w := testContext(s.T(), "POST", "/api/tasks", map[string]string{
		"title":       "Kickoff call",
		"description": "Agenda attached",
		"status":      "in_progress",
		"due_date":    "2026-09-15T10:30",
		"client_id":   client.ID,
		"assigned_to": member.ID,
	})
	s.env.tasks.CreateTask(c)
	requireSuccess(s.T(), w)

	var task models.Task
	s.Require().NoError(s.env.db.First(&task).Error)
	s.Equal(models.TaskStatusInProgress, task.Status)
	s.Require().NotNil(task.DueDate)
	s.Equal(2026, task.DueDate.Year())
	s.Require().NotNil(task.ClientID)
	s.Equal(client.ID, *task.ClientID)
	s.Require().NotNil(task.AssignedTo)
	s.Equal(member.ID, *task.AssignedTo)
}

func (s *TaskHandlerTestSuite) TestCreateTask_InvalidStatus() {
	c, w := testContext(s.T(), "POST", "/api/tasks", map[string]string{
		"title":  "Bad status",
		"status": "archived",
	})
	s.env.tasks.CreateTask(c)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *TaskHandlerTestSuite) TestCreateTask_InvalidDueDate() {
	c, w := testContext(s.T(), "POST", "/api/tasks", map[string]string{
		"title":    "Bad date",
		"due_date": "next tuesday",
	})
	s.env.tasks.CreateTask(c)
	s.Equal(http.StatusBadRequest, w.Code)

	var result map[string]interface{}
	decodeBody(s.T(), w, &result)
	s.Contains(result, "error")
}

func (s *TaskHandlerTestSuite) TestUpdateTaskStatus_TouchesOnlyStatus() {
	desc := "unchanged"
	task := &models.Task{Title: "Review PR", Description: &desc, Status: models.TaskStatusPending}
	s.Require().NoError(s.env.db.Create(task).Error)

	var before models.Task
	s.Require().NoError(s.env.db.First(&before, "id = ?", task.ID).Error)

	c, w := testContext(s.T(), "PATCH", "/api/tasks/"+task.ID+"/status", map[string]string{"status": "completed"})
	setParam(c, "id", task.ID)
	s.env.tasks.UpdateTaskStatus(c)
	requireSuccess(s.T(), w)

	var after models.Task
	s.Require().NoError(s.env.db.First(&after, "id = ?", task.ID).Error)
	s.Equal(models.TaskStatusCompleted, after.Status)
	s.Equal(before.Title, after.Title)
	s.Require().NotNil(after.Description)
	s.Equal(desc, *after.Description)
	s.False(after.UpdatedAt.Before(before.UpdatedAt))
}

func (s *TaskHandlerTestSuite) TestUpdateTaskStatus_RejectsUnknownValue() {
	task := &models.Task{Title: "Review PR"}
	s.Require().NoError(s.env.db.Create(task).Error)

	c, w := testContext(s.T(), "PATCH", "/api/tasks/"+task.ID+"/status", map[string]string{"status": "done"})
	setParam(c, "id", task.ID)
	s.env.tasks.UpdateTaskStatus(c)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *TaskHandlerTestSuite) TestUpdateTask_ClearsOptionalFields() {
	client := s.createClient("Acme")
	due := time.Now().Add(48 * time.Hour)
	desc := "old description"
	task := &models.Task{
		Title:       "Plan sprint",
		Description: &desc,
		Status:      models.TaskStatusInProgress,
		DueDate:     &due,
		ClientID:    &client.ID,
	}
	s.Require().NoError(s.env.db.Create(task).Error)

	c, w := testContext(s.T(), "PUT", "/api/tasks/"+task.ID, map[string]string{
		"title":  "Plan sprint",
		"status": "pending",
	})
	setParam(c, "id", task.ID)
	s.env.tasks.UpdateTask(c)
	requireSuccess(s.T(), w)

	var updated models.Task
	s.Require().NoError(s.env.db.First(&updated, "id = ?", task.ID).Error)
	s.Equal(models.TaskStatusPending, updated.Status)
	s.Nil(updated.Description)
	s.Nil(updated.DueDate)
	s.Nil(updated.ClientID)
}

func (s *TaskHandlerTestSuite) TestDeleteTask() {
	task := &models.Task{Title: "Obsolete"}
	s.Require().NoError(s.env.db.Create(task).Error)

	c, w := testContext(s.T(), "DELETE", "/api/tasks/"+task.ID, nil)
	setParam(c, "id", task.ID)
	s.env.tasks.DeleteTask(c)
	requireSuccess(s.T(), w)

	var count int64
	s.Require().NoError(s.env.db.Model(&models.Task{}).Count(&count).Error)
	s.Zero(count)
}

func (s *TaskHandlerTestSuite) TestListTasks_IncludesJoinedNames() {
	client := s.createClient("Acme")
	member := s.createMember("Dana")
	task := &models.Task{Title: "Kickoff", ClientID: &client.ID, AssignedTo: &member.ID}
	s.Require().NoError(s.env.db.Create(task).Error)

	c, w := testContext(s.T(), "GET", "/api/tasks", nil)
	s.env.tasks.ListTasks(c)
	s.Equal(http.StatusOK, w.Code)

	var response struct {
		Data []struct {
			Title  string `json:"title"`
			Client *struct {
				Name string `json:"name"`
			} `json:"client"`
			Assignee *struct {
				Name string `json:"name"`
			} `json:"assignee"`
		} `json:"data"`
	}
	decodeBody(s.T(), w, &response)
	s.Require().Len(response.Data, 1)
	s.Require().NotNil(response.Data[0].Client)
	s.Equal("Acme", response.Data[0].Client.Name)
	s.Require().NotNil(response.Data[0].Assignee)
	s.Equal("Dana", response.Data[0].Assignee.Name)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
