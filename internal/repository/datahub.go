package repository

import (
	"context"
	"fmt"
	"net/http"

	"buildings-api/internal/models"
)

// DataHubRepository reads grouped building products from the local
// aggregation backend.
type DataHubRepository struct {
	client *http.Client
	url    string
}

// NewDataHubRepository creates a repository for the DataHub endpoint at url
func NewDataHubRepository(client *http.Client, url string) *DataHubRepository {
	return &DataHubRepository{client: client, url: url}
}

// FetchBuildings downloads the current list of building records
func (r *DataHubRepository) FetchBuildings(ctx context.Context) ([]models.BuildingRecord, error) {
	var resp models.GroupedProductsResponse
	if err := getJSON(ctx, r.client, r.url, &resp); err != nil {
		return nil, fmt.Errorf("repository: datahub: %w", err)
	}

	records := resp.Data.GroupedProducts
	if records == nil {
		records = []models.BuildingRecord{}
	}
	return records, nil
}
