package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"opsboard/internal/constants"
	"opsboard/internal/models"
	"opsboard/internal/repository"
	"opsboard/internal/revalidate"
	"opsboard/internal/utils"
)

var ErrInvalidDueDate = errors.New("invalid due date")

// TaskService implements the task actions.
type TaskService struct {
	repo repository.TaskRepository
	rev  revalidate.Invalidator
	log  *logrus.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo repository.TaskRepository, rev revalidate.Invalidator, log *logrus.Logger) *TaskService {
	return &TaskService{repo: repo, rev: rev, log: log}
}

// TaskInput is the field-value map of the task form. Title is required.
// DueDate arrives in the form's datetime-local representation; blank optional
// fields are stored as NULL. A blank status defaults to pending at the store.
type TaskInput struct {
	Title       string
	Description string
	Status      string
	DueDate     string
	ClientID    string
	AssignedTo  string
}

func (s *TaskService) Create(ctx context.Context, input TaskInput) error {
	dueDate, err := utils.ParseDateTimeLocal(input.DueDate)
	if err != nil {
		return ErrInvalidDueDate
	}

	task := &models.Task{
		Title:       input.Title,
		Description: nullable(input.Description),
		Status:      models.TaskStatus(input.Status),
		DueDate:     dueDate,
		ClientID:    nullable(input.ClientID),
		AssignedTo:  nullable(input.AssignedTo),
	}

	if err := s.repo.Create(task); err != nil {
		return err
	}

	invalidate(ctx, s.rev, s.log, constants.RouteTasks, constants.RouteDashboard)
	return nil
}

// Update writes the full record for the given id, refreshing updated_at.
// A missing id is a zero-row update and still reports success.
func (s *TaskService) Update(ctx context.Context, id string, input TaskInput) error {
	dueDate, err := utils.ParseDateTimeLocal(input.DueDate)
	if err != nil {
		return ErrInvalidDueDate
	}

	values := map[string]interface{}{
		"title":       input.Title,
		"description": nullableValue(input.Description),
		"status":      input.Status,
		"client_id":   nullableValue(input.ClientID),
		"assigned_to": nullableValue(input.AssignedTo),
	}
	if dueDate != nil {
		values["due_date"] = *dueDate
	} else {
		values["due_date"] = nil
	}

	if _, err := s.repo.Update(id, values); err != nil {
		return err
	}

	invalidate(ctx, s.rev, s.log, constants.RouteTasks, constants.RouteDashboard)
	return nil
}

// UpdateStatus changes only status and updated_at; the inline status control
// uses it without opening the edit form.
func (s *TaskService) UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error {
	if _, err := s.repo.UpdateStatus(id, status); err != nil {
		return err
	}

	invalidate(ctx, s.rev, s.log, constants.RouteTasks, constants.RouteDashboard)
	return nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	invalidate(ctx, s.rev, s.log, constants.RouteTasks, constants.RouteDashboard)
	return nil
}

func (s *TaskService) List() ([]models.Task, error) {
	return s.repo.List()
}
