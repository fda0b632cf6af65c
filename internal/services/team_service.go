package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"opsboard/internal/constants"
	"opsboard/internal/models"
	"opsboard/internal/repository"
	"opsboard/internal/revalidate"
)

// TeamService implements the team-member actions.
type TeamService struct {
	repo repository.TeamMemberRepository
	rev  revalidate.Invalidator
	log  *logrus.Logger
}

// NewTeamService creates a new TeamService.
func NewTeamService(repo repository.TeamMemberRepository, rev revalidate.Invalidator, log *logrus.Logger) *TeamService {
	return &TeamService{repo: repo, rev: rev, log: log}
}

// TeamMemberInput is the field-value map of the team-member form. Name and
// email are required; blank role and phone are stored as NULL.
type TeamMemberInput struct {
	Name  string
	Email string
	Role  string
	Phone string
}

func (s *TeamService) Create(ctx context.Context, input TeamMemberInput) error {
	member := &models.TeamMember{
		Name:  input.Name,
		Email: input.Email,
		Role:  nullable(input.Role),
		Phone: nullable(input.Phone),
	}

	if err := s.repo.Create(member); err != nil {
		return err
	}

	invalidate(ctx, s.rev, s.log, constants.RouteTeam, constants.RouteDashboard)
	return nil
}

func (s *TeamService) Update(ctx context.Context, id string, input TeamMemberInput) error {
	values := map[string]interface{}{
		"name":  input.Name,
		"email": input.Email,
		"role":  nullableValue(input.Role),
		"phone": nullableValue(input.Phone),
	}

	if _, err := s.repo.Update(id, values); err != nil {
		return err
	}

	invalidate(ctx, s.rev, s.log, constants.RouteTeam, constants.RouteDashboard)
	return nil
}

// Delete removes a member. Their tasks stay behind with assigned_to nulled,
// so the tasks page is revalidated as well.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	invalidate(ctx, s.rev, s.log, constants.RouteTeam, constants.RouteTasks, constants.RouteDashboard)
	return nil
}

func (s *TeamService) List() ([]models.TeamMember, error) {
	return s.repo.List()
}

func (s *TeamService) Options() ([]models.TeamMember, error) {
	return s.repo.Options()
}
