package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/inkwell-io/cms-client/internal/http"
	"github.com/inkwell-io/cms-client/pkg/cms"
)

// ContentsClient implements cms.ContentsClient.
type ContentsClient struct {
	httpClient *http.Client
}

// NewContentsClient creates a new contents client.
func NewContentsClient(httpClient *http.Client) *ContentsClient {
	return &ContentsClient{
		httpClient: httpClient,
	}
}

// List implements cms.ContentsClient.List.
func (c *ContentsClient) List(ctx context.Context, schema string, query *cms.Query) (*cms.ListResponse[cms.Content], error) {
	if schema == "" {
		return nil, cms.ErrSchemaRequired
	}

	var values url.Values
	if query != nil {
		values = query.ToValues()
	}

	path := fmt.Sprintf("/v1/contents/%s", schema)

	resp, err := c.httpClient.Get(ctx, path, values)
	if err != nil {
		return nil, fmt.Errorf("listing contents: %w", err)
	}

	var result cms.ListResponse[cms.Content]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing contents list response: %w", err)
	}

	return &result, nil
}

// Get implements cms.ContentsClient.Get.
func (c *ContentsClient) Get(ctx context.Context, schema, id string) (*cms.Content, error) {
	path := fmt.Sprintf("/v1/contents/%s/%s", schema, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting content: %w", err)
	}

	return parseContent(resp.Body)
}

// Create implements cms.ContentsClient.Create.
func (c *ContentsClient) Create(ctx context.Context, schema string, data cms.ContentData) (*cms.Content, error) {
	if schema == "" {
		return nil, cms.ErrSchemaRequired
	}

	path := fmt.Sprintf("/v1/contents/%s", schema)

	resp, err := c.httpClient.Post(ctx, path, data)
	if err != nil {
		return nil, fmt.Errorf("creating content: %w", err)
	}

	return parseContent(resp.Body)
}

// Update implements cms.ContentsClient.Update, replacing the full data object.
func (c *ContentsClient) Update(ctx context.Context, schema, id string, data cms.ContentData) (*cms.Content, error) {
	path := fmt.Sprintf("/v1/contents/%s/%s", schema, id)

	resp, err := c.httpClient.Put(ctx, path, data)
	if err != nil {
		return nil, fmt.Errorf("updating content: %w", err)
	}

	return parseContent(resp.Body)
}

// Patch implements cms.ContentsClient.Patch, merging the given fields into
// the existing data object.
func (c *ContentsClient) Patch(ctx context.Context, schema, id string, data cms.ContentData) (*cms.Content, error) {
	path := fmt.Sprintf("/v1/contents/%s/%s", schema, id)

	resp, err := c.httpClient.Patch(ctx, path, data)
	if err != nil {
		return nil, fmt.Errorf("patching content: %w", err)
	}

	return parseContent(resp.Body)
}

// Delete implements cms.ContentsClient.Delete.
func (c *ContentsClient) Delete(ctx context.Context, schema, id string) error {
	path := fmt.Sprintf("/v1/contents/%s/%s", schema, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting content: %w", err)
	}

	return nil
}

// Publish implements cms.ContentsClient.Publish.
func (c *ContentsClient) Publish(ctx context.Context, schema, id string) (*cms.Content, error) {
	path := fmt.Sprintf("/v1/contents/%s/%s/publish", schema, id)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("publishing content: %w", err)
	}

	return parseContent(resp.Body)
}

// Unpublish implements cms.ContentsClient.Unpublish.
func (c *ContentsClient) Unpublish(ctx context.Context, schema, id string) (*cms.Content, error) {
	path := fmt.Sprintf("/v1/contents/%s/%s/unpublish", schema, id)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("unpublishing content: %w", err)
	}

	return parseContent(resp.Body)
}

func parseContent(body []byte) (*cms.Content, error) {
	var content cms.Content
	if err := json.Unmarshal(body, &content); err != nil {
		return nil, fmt.Errorf("parsing content response: %w", err)
	}

	return &content, nil
}
