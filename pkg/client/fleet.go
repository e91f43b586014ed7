package client

import (
	"fmt"
	"net/http"
	"time"

	"carpool/pkg/model"
)

// FleetClient reads car details from the fleet service over its public API.
type FleetClient struct {
	http *HttpClient
}

func NewFleetClient(baseURL string) *FleetClient {
	return &FleetClient{
		http: NewHttpClient(baseURL),
	}
}

// WaitForHealthy blocks until the fleet service answers its health check.
func (c *FleetClient) WaitForHealthy(maxWait time.Duration) error {
	return c.http.WaitForHealthy(maxWait)
}

func (c *FleetClient) GetCarByID(id string) (*model.Car, error) {
	resp, err := c.http.GET("/api/v1/cars/id/" + id)
	if err != nil {
		return nil, fmt.Errorf("fleet request failed: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("car %s not found", id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fleet returned status %d: %s", resp.StatusCode, GetErrorMessage(resp))
	}

	var car model.Car
	if err := resp.DecodeJSON(&car); err != nil {
		return nil, fmt.Errorf("failed to decode car: %w", err)
	}
	return &car, nil
}
