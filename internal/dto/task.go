package dto

import (
	"time"

	"opsboard/internal/models"
	"opsboard/internal/utils"
)

// TaskDTO represents a task row in list responses, with the joined client and
// assignee names the list renders. DueDateLocal carries the due date in the
// form's datetime-local representation for pre-filling the edit form.
type TaskDTO struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  *string           `json:"description"`
	Status       models.TaskStatus `json:"status"`
	DueDate      *time.Time        `json:"due_date"`
	DueDateLocal string            `json:"due_date_local"`
	ClientID     *string           `json:"client_id"`
	AssignedTo   *string           `json:"assigned_to"`
	Client       *NameRef          `json:"client,omitempty"`
	Assignee     *NameRef          `json:"assignee,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO.
func ToTaskDTO(task models.Task) TaskDTO {
	d := TaskDTO{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status,
		DueDate:      task.DueDate,
		DueDateLocal: utils.FormatDateTimeLocal(task.DueDate),
		ClientID:     task.ClientID,
		AssignedTo:   task.AssignedTo,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}

	if task.Client != nil {
		d.Client = &NameRef{ID: task.Client.ID, Name: task.Client.Name}
	}
	if task.Assignee != nil {
		d.Assignee = &NameRef{ID: task.Assignee.ID, Name: task.Assignee.Name}
	}

	return d
}

// ToTaskDTOs converts a slice of tasks.
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
