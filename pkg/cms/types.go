package cms

import "time"

// Content represents a single content item of a schema. Data holds the
// localized field values keyed by field name, addressed in filter expressions
// as paths like "data/difficulty/iv" ("iv" being the invariant locale).
type Content struct {
	ID             string                 `json:"id"             yaml:"id"`
	SchemaName     string                 `json:"schemaName"     yaml:"schemaName"`
	Status         string                 `json:"status"         yaml:"status"`
	Version        int64                  `json:"version"        yaml:"version"`
	Data           map[string]interface{} `json:"data"           yaml:"data"`
	Created        time.Time              `json:"created"        yaml:"created"`
	CreatedBy      string                 `json:"createdBy"      yaml:"createdBy"`
	LastModified   time.Time              `json:"lastModified"   yaml:"lastModified"`
	LastModifiedBy string                 `json:"lastModifiedBy" yaml:"lastModifiedBy"`
}

// ContentData is the payload for creating or updating a content item.
type ContentData map[string]interface{}

// Asset represents an uploaded binary asset and its metadata.
type Asset struct {
	ID           string                 `json:"id"           yaml:"id"`
	FileName     string                 `json:"fileName"     yaml:"fileName"`
	MimeType     string                 `json:"mimeType"     yaml:"mimeType"`
	FileSize     int64                  `json:"fileSize"     yaml:"fileSize"`
	Slug         string                 `json:"slug"         yaml:"slug"`
	Tags         []string               `json:"tags"         yaml:"tags"`
	Metadata     map[string]interface{} `json:"metadata"     yaml:"metadata"`
	Version      int64                  `json:"version"      yaml:"version"`
	Created      time.Time              `json:"created"      yaml:"created"`
	LastModified time.Time              `json:"lastModified" yaml:"lastModified"`
}

// AssetUpdateRequest carries the mutable metadata of an asset.
type AssetUpdateRequest struct {
	FileName string                 `json:"fileName,omitempty"`
	Slug     string                 `json:"slug,omitempty"`
	Tags     []string               `json:"tags,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Schema describes a content schema published on the backend.
type Schema struct {
	Name        string        `json:"name"        yaml:"name"`
	Label       string        `json:"label"       yaml:"label"`
	IsPublished bool          `json:"isPublished" yaml:"isPublished"`
	Fields      []SchemaField `json:"fields"      yaml:"fields"`
	Created     time.Time     `json:"created"     yaml:"created"`
}

// SchemaField describes one field of a schema.
type SchemaField struct {
	Name       string `json:"name"       yaml:"name"`
	Type       string `json:"type"       yaml:"type"`
	IsRequired bool   `json:"isRequired" yaml:"isRequired"`
	IsListed   bool   `json:"isListed"   yaml:"isListed"`
}

// ListResponse is the paginated list envelope returned by listing endpoints.
type ListResponse[T any] struct {
	Total int64 `json:"total" yaml:"total"`
	Items []T   `json:"items" yaml:"items"`
}

// Info represents the gateway /v1/info response.
type Info struct {
	Name        string          `json:"name"        yaml:"name"`
	Version     string          `json:"version"     yaml:"version"`
	Build       string          `json:"build"       yaml:"build"`
	Description string          `json:"description" yaml:"description"`
	Links       map[string]Link `json:"links"       yaml:"links"`
}

// RootInfo represents the gateway root ("/") response, used to discover the
// auth endpoint.
type RootInfo struct {
	Links map[string]Link `json:"links" yaml:"links"`
}

// Link is a single hypermedia link.
type Link struct {
	Href string `json:"href" yaml:"href"`
}
