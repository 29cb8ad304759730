package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/inkwell-io/cms-client/internal/http"
	"github.com/inkwell-io/cms-client/pkg/cms"
)

// AssetsClient implements cms.AssetsClient.
type AssetsClient struct {
	httpClient *http.Client
}

// NewAssetsClient creates a new assets client.
func NewAssetsClient(httpClient *http.Client) *AssetsClient {
	return &AssetsClient{
		httpClient: httpClient,
	}
}

// List implements cms.AssetsClient.List.
func (c *AssetsClient) List(ctx context.Context, query *cms.Query) (*cms.ListResponse[cms.Asset], error) {
	var values url.Values
	if query != nil {
		values = query.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v1/assets", values)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	var result cms.ListResponse[cms.Asset]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing assets list response: %w", err)
	}

	return &result, nil
}

// Get implements cms.AssetsClient.Get.
func (c *AssetsClient) Get(ctx context.Context, id string) (*cms.Asset, error) {
	path := fmt.Sprintf("/v1/assets/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting asset: %w", err)
	}

	return parseAsset(resp.Body)
}

// Update implements cms.AssetsClient.Update.
func (c *AssetsClient) Update(ctx context.Context, id string, request *cms.AssetUpdateRequest) (*cms.Asset, error) {
	path := fmt.Sprintf("/v1/assets/%s", id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating asset: %w", err)
	}

	return parseAsset(resp.Body)
}

// Delete implements cms.AssetsClient.Delete.
func (c *AssetsClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/v1/assets/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}

	return nil
}

func parseAsset(body []byte) (*cms.Asset, error) {
	var asset cms.Asset
	if err := json.Unmarshal(body, &asset); err != nil {
		return nil, fmt.Errorf("parsing asset response: %w", err)
	}

	return &asset, nil
}
