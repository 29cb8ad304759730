package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/inkwell-io/cms-client/internal/http"
	"github.com/inkwell-io/cms-client/pkg/cms"
)

// SchemasClient implements cms.SchemasClient.
type SchemasClient struct {
	httpClient *http.Client
}

// NewSchemasClient creates a new schemas client.
func NewSchemasClient(httpClient *http.Client) *SchemasClient {
	return &SchemasClient{
		httpClient: httpClient,
	}
}

// List implements cms.SchemasClient.List.
func (c *SchemasClient) List(ctx context.Context) (*cms.ListResponse[cms.Schema], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/schemas", nil)
	if err != nil {
		return nil, fmt.Errorf("listing schemas: %w", err)
	}

	var result cms.ListResponse[cms.Schema]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing schemas list response: %w", err)
	}

	return &result, nil
}

// Get implements cms.SchemasClient.Get.
func (c *SchemasClient) Get(ctx context.Context, name string) (*cms.Schema, error) {
	path := fmt.Sprintf("/v1/schemas/%s", name)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting schema: %w", err)
	}

	var schema cms.Schema
	if err := json.Unmarshal(resp.Body, &schema); err != nil {
		return nil, fmt.Errorf("parsing schema response: %w", err)
	}

	return &schema, nil
}
