package cms_test

import (
	"net/url"
	"testing"

	"github.com/inkwell-io/cms-client/pkg/cms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestQuery_FilterClauses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    *cms.Query
		expected string
	}{
		{
			name:     "equals string",
			query:    cms.NewQuery().Equals("data/difficulty/iv", "easy"),
			expected: "data/difficulty/iv eq 'easy'",
		},
		{
			name:     "equals number",
			query:    cms.NewQuery().Equals("data/points/iv", 5),
			expected: "data/points/iv eq 5",
		},
		{
			name:     "equals boolean",
			query:    cms.NewQuery().Equals("data/archived/iv", true),
			expected: "data/archived/iv eq true",
		},
		{
			name:     "not equals",
			query:    cms.NewQuery().NotEquals("status", "Draft"),
			expected: "status ne 'Draft'",
		},
		{
			name:     "greater than",
			query:    cms.NewQuery().GreaterThan("data/score/iv", 10),
			expected: "data/score/iv gt 10",
		},
		{
			name:     "greater or equal",
			query:    cms.NewQuery().GreaterOrEqual("data/score/iv", 10.5),
			expected: "data/score/iv ge 10.5",
		},
		{
			name:     "less than",
			query:    cms.NewQuery().LessThan("data/score/iv", 100),
			expected: "data/score/iv lt 100",
		},
		{
			name:     "less or equal",
			query:    cms.NewQuery().LessOrEqual("data/score/iv", 100),
			expected: "data/score/iv le 100",
		},
		{
			name:     "contains",
			query:    cms.NewQuery().Contains("data/title/iv", "math"),
			expected: "contains(data/title/iv, 'math')",
		},
		{
			name:     "starts with",
			query:    cms.NewQuery().StartsWith("data/title/iv", "intro"),
			expected: "startswith(data/title/iv, 'intro')",
		},
		{
			name:     "ends with",
			query:    cms.NewQuery().EndsWith("data/title/iv", "101"),
			expected: "endswith(data/title/iv, '101')",
		},
		{
			name:     "in with strings",
			query:    cms.NewQuery().In("data/level/iv", "a", "b"),
			expected: "data/level/iv in ('a','b')",
		},
		{
			name:     "in with numbers",
			query:    cms.NewQuery().In("data/level/iv", 1, 2, 3),
			expected: "data/level/iv in (1,2,3)",
		},
		{
			name:     "in preserves order and duplicates",
			query:    cms.NewQuery().In("data/level/iv", "b", "a", "b"),
			expected: "data/level/iv in ('b','a','b')",
		},
		{
			name:     "in with no values",
			query:    cms.NewQuery().In("data/level/iv"),
			expected: "data/level/iv in ()",
		},
		{
			name:     "raw expression",
			query:    cms.NewQuery().Raw("data/tags/iv eq null"),
			expected: "data/tags/iv eq null",
		},
		{
			name: "clauses joined with and in call order",
			query: cms.NewQuery().
				Equals("status", "Published").
				GreaterThan("version", 2).
				Raw("data/tags/iv eq null"),
			expected: "status eq 'Published' and version gt 2 and data/tags/iv eq null",
		},
		{
			name:     "embedded quote passed through verbatim",
			query:    cms.NewQuery().Equals("data/title/iv", "it's"),
			expected: "data/title/iv eq 'it's'",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			compiled := tt.query.Build()
			require.NotNil(t, compiled.Filter)
			assert.Equal(t, tt.expected, *compiled.Filter)
		})
	}
}

func TestQuery_Build(t *testing.T) {
	t.Parallel()
	t.Run("empty builder produces no options", func(t *testing.T) {
		t.Parallel()

		compiled := cms.NewQuery().Build()

		assert.Nil(t, compiled.Filter)
		assert.Nil(t, compiled.OrderBy)
		assert.Nil(t, compiled.Top)
		assert.Nil(t, compiled.Skip)
		assert.Nil(t, compiled.Search)
		assert.Equal(t, url.Values{}, compiled.ToValues())
	})

	t.Run("single clause has no separator", func(t *testing.T) {
		t.Parallel()

		compiled := cms.NewQuery().Equals("status", "Published").Build()

		require.NotNil(t, compiled.Filter)
		assert.Equal(t, "status eq 'Published'", *compiled.Filter)
	})

	t.Run("order by defaults to ascending", func(t *testing.T) {
		t.Parallel()

		compiled := cms.NewQuery().OrderBy("created", "").Build()

		require.NotNil(t, compiled.OrderBy)
		assert.Equal(t, "created asc", *compiled.OrderBy)
	})

	t.Run("order by descending", func(t *testing.T) {
		t.Parallel()

		compiled := cms.NewQuery().OrderBy("created", cms.SortDescending).Build()

		require.NotNil(t, compiled.OrderBy)
		assert.Equal(t, "created desc", *compiled.OrderBy)
	})

	t.Run("order by is last write wins", func(t *testing.T) {
		t.Parallel()

		compiled := cms.NewQuery().
			OrderBy("created", cms.SortAscending).
			OrderBy("lastModified", cms.SortDescending).
			Build()

		require.NotNil(t, compiled.OrderBy)
		assert.Equal(t, "lastModified desc", *compiled.OrderBy)
	})

	t.Run("top skip and search are last write wins", func(t *testing.T) {
		t.Parallel()

		compiled := cms.NewQuery().
			Top(10).Top(20).
			Skip(1).Skip(5).
			Search("calculus").Search("algebra").
			Build()

		require.NotNil(t, compiled.Top)
		assert.Equal(t, 20, *compiled.Top)
		require.NotNil(t, compiled.Skip)
		assert.Equal(t, 5, *compiled.Skip)
		require.NotNil(t, compiled.Search)
		assert.Equal(t, "algebra", *compiled.Search)
	})

	t.Run("empty search term still sets the option", func(t *testing.T) {
		t.Parallel()

		compiled := cms.NewQuery().Search("").Build()

		require.NotNil(t, compiled.Search)
		assert.Equal(t, "", *compiled.Search)
		assert.Equal(t, url.Values{"$search": []string{""}}, compiled.ToValues())
	})

	t.Run("negative paging values pass through unchanged", func(t *testing.T) {
		t.Parallel()

		compiled := cms.NewQuery().Top(-1).Skip(-5).Build()

		require.NotNil(t, compiled.Top)
		assert.Equal(t, -1, *compiled.Top)
		require.NotNil(t, compiled.Skip)
		assert.Equal(t, -5, *compiled.Skip)
	})

	t.Run("build does not reset the builder", func(t *testing.T) {
		t.Parallel()

		query := cms.NewQuery().Equals("status", "Published")

		first := query.Build()
		require.NotNil(t, first.Filter)
		assert.Equal(t, "status eq 'Published'", *first.Filter)

		second := query.GreaterThan("version", 1).Build()
		require.NotNil(t, second.Filter)
		assert.Equal(t, "status eq 'Published' and version gt 1", *second.Filter)
	})
}

func TestQuery_EndToEnd(t *testing.T) {
	t.Parallel()

	compiled := cms.NewQuery().
		Equals("data/difficulty/iv", "easy").
		Contains("data/title/iv", "math").
		OrderBy("created", cms.SortDescending).
		Top(20).
		Skip(5).
		Search("algebra").
		Build()

	require.NotNil(t, compiled.Filter)
	assert.Equal(t, "data/difficulty/iv eq 'easy' and contains(data/title/iv, 'math')", *compiled.Filter)
	require.NotNil(t, compiled.OrderBy)
	assert.Equal(t, "created desc", *compiled.OrderBy)
	require.NotNil(t, compiled.Top)
	assert.Equal(t, 20, *compiled.Top)
	require.NotNil(t, compiled.Skip)
	assert.Equal(t, 5, *compiled.Skip)
	require.NotNil(t, compiled.Search)
	assert.Equal(t, "algebra", *compiled.Search)

	expected := url.Values{
		"$filter":  []string{"data/difficulty/iv eq 'easy' and contains(data/title/iv, 'math')"},
		"$orderby": []string{"created desc"},
		"$top":     []string{"20"},
		"$skip":    []string{"5"},
		"$search":  []string{"algebra"},
	}
	assert.Equal(t, expected, compiled.ToValues())
}
