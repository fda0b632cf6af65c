package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"opsboard/internal/models"
	"opsboard/internal/repository"
)

// DashboardService computes the overview stats.
type DashboardService struct {
	taskRepo   repository.TaskRepository
	clientRepo repository.ClientRepository
	teamRepo   repository.TeamMemberRepository
	log        *logrus.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(taskRepo repository.TaskRepository, clientRepo repository.ClientRepository, teamRepo repository.TeamMemberRepository, log *logrus.Logger) *DashboardService {
	return &DashboardService{
		taskRepo:   taskRepo,
		clientRepo: clientRepo,
		teamRepo:   teamRepo,
		log:        log,
	}
}

// StatusCounts buckets tasks by the three recognized statuses.
type StatusCounts struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
}

// DashboardStats is the overview payload.
type DashboardStats struct {
	TotalTasks       int64        `json:"totalTasks"`
	TotalClients     int64        `json:"totalClients"`
	TotalTeamMembers int64        `json:"totalTeamMembers"`
	TasksByStatus    StatusCounts `json:"tasksByStatus"`
}

// Stats issues the three independent counting queries concurrently and
// buckets task statuses in a single pass. A task whose status is none of the
// three recognized values counts toward the total but no bucket; that row is
// logged so the tolerance stays visible.
func (s *DashboardService) Stats() (*DashboardStats, error) {
	var (
		statuses    []string
		clientCount int64
		teamCount   int64
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		statuses, err = s.taskRepo.Statuses()
		if err != nil {
			return fmt.Errorf("failed to fetch task statuses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		clientCount, err = s.clientRepo.Count()
		if err != nil {
			return fmt.Errorf("failed to count clients: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		teamCount, err = s.teamRepo.Count()
		if err != nil {
			return fmt.Errorf("failed to count team members: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalTasks:       int64(len(statuses)),
		TotalClients:     clientCount,
		TotalTeamMembers: teamCount,
	}

	for _, status := range statuses {
		switch models.TaskStatus(status) {
		case models.TaskStatusPending:
			stats.TasksByStatus.Pending++
		case models.TaskStatusInProgress:
			stats.TasksByStatus.InProgress++
		case models.TaskStatusCompleted:
			stats.TasksByStatus.Completed++
		default:
			s.log.WithField("status", status).Warn("task with unrecognized status excluded from buckets")
		}
	}

	return stats, nil
}
