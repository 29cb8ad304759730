package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/inkwell-io/cms-client/pkg/cms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetsClient_List(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/assets", request.URL.Path)
		assert.Equal(t, "contains(fileName, 'diagram')", request.URL.Query().Get("$filter"))

		_ = json.NewEncoder(writer).Encode(cms.ListResponse[cms.Asset]{
			Total: 1,
			Items: []cms.Asset{{ID: "a1", FileName: "diagram.png", MimeType: "image/png"}},
		})
	})

	result, err := client.Assets().List(context.Background(), cms.NewQuery().Contains("fileName", "diagram"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "diagram.png", result.Items[0].FileName)
}

func TestAssetsClient_Get(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/assets/a1", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(cms.Asset{ID: "a1", FileSize: 2048})
	})

	asset, err := client.Assets().Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(2048), asset.FileSize)
}

func TestAssetsClient_Update(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PATCH", request.Method)
		assert.Equal(t, "/v1/assets/a1", request.URL.Path)

		var body cms.AssetUpdateRequest

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, []string{"math", "print"}, body.Tags)

		_ = json.NewEncoder(writer).Encode(cms.Asset{ID: "a1", Tags: body.Tags})
	})

	asset, err := client.Assets().Update(context.Background(), "a1", &cms.AssetUpdateRequest{
		Tags: []string{"math", "print"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "print"}, asset.Tags)
}

func TestAssetsClient_Delete(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	})

	err := client.Assets().Delete(context.Background(), "a1")
	require.NoError(t, err)
}
