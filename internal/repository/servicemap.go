package repository

import (
	"context"
	"fmt"
	"net/http"

	"buildings-api/internal/models"
)

// ServiceMapRepository reads units from the Helsinki service map REST API
type ServiceMapRepository struct {
	client *http.Client
	url    string
}

// NewServiceMapRepository creates a repository for the unit list at url
func NewServiceMapRepository(client *http.Client, url string) *ServiceMapRepository {
	return &ServiceMapRepository{client: client, url: url}
}

// FetchUnits downloads the unit list
func (r *ServiceMapRepository) FetchUnits(ctx context.Context) ([]models.Unit, error) {
	var units []models.Unit
	if err := getJSON(ctx, r.client, r.url, &units); err != nil {
		return nil, fmt.Errorf("repository: service map: %w", err)
	}

	if units == nil {
		units = []models.Unit{}
	}
	return units, nil
}
