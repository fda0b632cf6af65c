package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"opsboard/internal/constants"
	"opsboard/internal/models"
	"opsboard/internal/repository"
	"opsboard/internal/revalidate"
)

// ClientService implements the client actions: shape the submitted fields,
// issue one store operation, revalidate the listing route.
type ClientService struct {
	repo repository.ClientRepository
	rev  revalidate.Invalidator
	log  *logrus.Logger
}

// NewClientService creates a new ClientService.
func NewClientService(repo repository.ClientRepository, rev revalidate.Invalidator, log *logrus.Logger) *ClientService {
	return &ClientService{repo: repo, rev: rev, log: log}
}

// ClientInput is the field-value map of the client form. Name is required;
// blank optional fields are stored as NULL.
type ClientInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

func (s *ClientService) Create(ctx context.Context, input ClientInput) error {
	client := &models.Client{
		Name:    input.Name,
		Email:   nullable(input.Email),
		Phone:   nullable(input.Phone),
		Company: nullable(input.Company),
	}

	if err := s.repo.Create(client); err != nil {
		return err
	}

	invalidate(ctx, s.rev, s.log, constants.RouteClients, constants.RouteDashboard)
	return nil
}

// Update writes the full record for the given id. A missing id is a zero-row
// update and still reports success.
func (s *ClientService) Update(ctx context.Context, id string, input ClientInput) error {
	values := map[string]interface{}{
		"name":    input.Name,
		"email":   nullableValue(input.Email),
		"phone":   nullableValue(input.Phone),
		"company": nullableValue(input.Company),
	}

	if _, err := s.repo.Update(id, values); err != nil {
		return err
	}

	invalidate(ctx, s.rev, s.log, constants.RouteClients, constants.RouteDashboard)
	return nil
}

// Delete removes a client. The tasks page is revalidated too, since the
// store detaches referencing tasks.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	invalidate(ctx, s.rev, s.log, constants.RouteClients, constants.RouteTasks, constants.RouteDashboard)
	return nil
}

func (s *ClientService) List() ([]models.Client, error) {
	return s.repo.List()
}

func (s *ClientService) Options() ([]models.Client, error) {
	return s.repo.Options()
}

