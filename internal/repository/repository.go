package repository

import (
	"time"

	"opsboard/internal/models"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	// Create inserts a new client
	Create(client *models.Client) error

	// Update applies the given column values to the client with the given id
	// and reports how many rows matched. A zero-row update is not an error.
	Update(id string, values map[string]interface{}) (int64, error)

	// Delete removes a client and detaches its tasks
	Delete(id string) error

	// List returns all clients, newest first
	List() ([]models.Client, error)

	// Options returns id and name for every client, sorted by name
	Options() ([]models.Client, error)

	// Count returns the total number of clients
	Count() (int64, error)
}

// TeamMemberRepository defines the interface for team member data access
type TeamMemberRepository interface {
	Create(member *models.TeamMember) error
	Update(id string, values map[string]interface{}) (int64, error)

	// Delete removes a member and unassigns their tasks
	Delete(id string) error

	List() ([]models.TeamMember, error)
	Options() ([]models.TeamMember, error)
	Count() (int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error
	Update(id string, values map[string]interface{}) (int64, error)

	// UpdateStatus changes only the status (and updated_at) of a task
	UpdateStatus(id string, status models.TaskStatus) (int64, error)

	Delete(id string) error

	// List returns all tasks, newest first, with client and assignee loaded
	List() ([]models.Task, error)

	// FindByID returns a single task with client and assignee loaded
	FindByID(id string) (*models.Task, error)

	// Statuses returns the status column of every task
	Statuses() ([]string, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)

	// TouchLastSignIn stamps the user's last_sign_in_at
	TouchLastSignIn(id string, at time.Time) error
}
