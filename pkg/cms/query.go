package cms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SortDirection is the direction of an $orderby clause.
type SortDirection string

const (
	// SortAscending sorts results in ascending order.
	SortAscending SortDirection = "asc"

	// SortDescending sorts results in descending order.
	SortDescending SortDirection = "desc"
)

// Query accumulates filter, ordering, and paging intents and compiles them
// into the OData-style query options understood by the content API.
//
// A Query is an explicit mutable builder scoped to one construction. All
// clause methods return the receiver so calls can be chained:
//
//	q := cms.NewQuery().
//	    Equals("data/difficulty/iv", "easy").
//	    Contains("data/title/iv", "math").
//	    OrderBy("created", cms.SortDescending).
//	    Top(20)
//
// Filter clauses are joined with " and " in insertion order. OrderBy, Top,
// Skip, and Search are last-write-wins: each call replaces the previous
// value. Build does not reset the builder; the instance stays usable and
// keeps accumulating clauses.
//
// String operands are single-quoted in the compiled output. Embedded single
// quotes are passed through verbatim, not escaped; callers that interpolate
// untrusted input into string operands are responsible for sanitizing it.
type Query struct {
	clauses []string
	orderBy string
	top     *int
	skip    *int
	search  *string
}

// NewQuery creates an empty query builder.
func NewQuery() *Query {
	return &Query{}
}

// Equals appends a "field eq value" clause.
func (q *Query) Equals(field string, value interface{}) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("%s eq %s", field, formatLiteral(value)))

	return q
}

// NotEquals appends a "field ne value" clause.
func (q *Query) NotEquals(field string, value interface{}) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("%s ne %s", field, formatLiteral(value)))

	return q
}

// GreaterThan appends a "field gt value" clause.
func (q *Query) GreaterThan(field string, value float64) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("%s gt %s", field, formatNumber(value)))

	return q
}

// GreaterOrEqual appends a "field ge value" clause.
func (q *Query) GreaterOrEqual(field string, value float64) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("%s ge %s", field, formatNumber(value)))

	return q
}

// LessThan appends a "field lt value" clause.
func (q *Query) LessThan(field string, value float64) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("%s lt %s", field, formatNumber(value)))

	return q
}

// LessOrEqual appends a "field le value" clause.
func (q *Query) LessOrEqual(field string, value float64) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("%s le %s", field, formatNumber(value)))

	return q
}

// Contains appends a "contains(field, 'value')" clause.
func (q *Query) Contains(field, value string) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("contains(%s, '%s')", field, value))

	return q
}

// StartsWith appends a "startswith(field, 'value')" clause.
func (q *Query) StartsWith(field, value string) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("startswith(%s, '%s')", field, value))

	return q
}

// EndsWith appends an "endswith(field, 'value')" clause.
func (q *Query) EndsWith(field, value string) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("endswith(%s, '%s')", field, value))

	return q
}

// In appends a "field in (v1,v2,...)" clause. Element order and duplicates
// are preserved. Zero values compile to "field in ()", which most filter
// grammars treat as vacuously false; the builder does not reject it.
func (q *Query) In(field string, values ...interface{}) *Query {
	literals := make([]string, 0, len(values))
	for _, value := range values {
		literals = append(literals, formatLiteral(value))
	}

	q.clauses = append(q.clauses, fmt.Sprintf("%s in (%s)", field, strings.Join(literals, ",")))

	return q
}

// Raw appends the given expression verbatim as a single clause. It is the
// escape hatch for filter expressions the typed methods cannot express.
func (q *Query) Raw(expression string) *Query {
	q.clauses = append(q.clauses, expression)

	return q
}

// OrderBy sets the $orderby clause, replacing any previous one. An empty
// direction sorts ascending.
func (q *Query) OrderBy(field string, direction SortDirection) *Query {
	if direction == "" {
		direction = SortAscending
	}

	q.orderBy = fmt.Sprintf("%s %s", field, direction)

	return q
}

// Top sets the $top value, replacing any previous one. The value is passed
// through without range validation; keeping it sane is the caller's job.
func (q *Query) Top(limit int) *Query {
	q.top = &limit

	return q
}

// Skip sets the $skip value, replacing any previous one. Not range-validated.
func (q *Query) Skip(offset int) *Query {
	q.skip = &offset

	return q
}

// Search sets the $search term, replacing any previous one. An empty string
// still produces a $search option; only never calling Search suppresses it.
func (q *Query) Search(term string) *Query {
	q.search = &term

	return q
}

// CompiledQuery is the wire-level form of a Query. A field is nil exactly
// when the corresponding intent was never set.
type CompiledQuery struct {
	Filter  *string
	OrderBy *string
	Top     *int
	Skip    *int
	Search  *string
}

// Build compiles the accumulated intents into a CompiledQuery. Building with
// zero clauses yields a CompiledQuery with a nil Filter, not an empty string.
func (q *Query) Build() CompiledQuery {
	var compiled CompiledQuery

	if len(q.clauses) > 0 {
		filter := strings.Join(q.clauses, " and ")
		compiled.Filter = &filter
	}

	if q.orderBy != "" {
		orderBy := q.orderBy
		compiled.OrderBy = &orderBy
	}

	if q.top != nil {
		top := *q.top
		compiled.Top = &top
	}

	if q.skip != nil {
		skip := *q.skip
		compiled.Skip = &skip
	}

	if q.search != nil {
		search := *q.search
		compiled.Search = &search
	}

	return compiled
}

// ToValues compiles the query and converts it to URL query parameters.
func (q *Query) ToValues() url.Values {
	return q.Build().ToValues()
}

// ToValues converts the compiled query to URL query parameters.
func (c CompiledQuery) ToValues() url.Values {
	values := url.Values{}

	if c.Filter != nil {
		values.Set("$filter", *c.Filter)
	}

	if c.OrderBy != nil {
		values.Set("$orderby", *c.OrderBy)
	}

	if c.Top != nil {
		values.Set("$top", strconv.Itoa(*c.Top))
	}

	if c.Skip != nil {
		values.Set("$skip", strconv.Itoa(*c.Skip))
	}

	if c.Search != nil {
		values.Set("$search", *c.Search)
	}

	return values
}

// formatLiteral renders an operand for the filter grammar: strings are
// single-quoted (embedded quotes passed through verbatim), booleans and
// numbers are bare literals. Anything else falls back to fmt formatting.
func formatLiteral(value interface{}) string {
	switch v := value.(type) {
	case string:
		return "'" + v + "'"
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return formatNumber(float64(v))
	case float64:
		return formatNumber(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatNumber renders a numeric literal without a trailing fraction when the
// value is integral (5, not 5.000000).
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
