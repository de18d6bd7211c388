package strapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query builds the backend's query-string dialect: bracketed pagination,
// repeated populate keys, dotted relation filters and $or-combined
// case-insensitive substring search.
type Query struct {
	values url.Values
	orIdx  int
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Paginate sets pagination[page] and pagination[pageSize].
func (q *Query) Paginate(page, pageSize int) *Query {
	q.values.Set("pagination[page]", strconv.Itoa(page))
	q.values.Set("pagination[pageSize]", strconv.Itoa(pageSize))
	return q
}

// Populate adds relation-expansion hints, one populate= entry per relation.
// Nested relations use dots ("club.logo").
func (q *Query) Populate(relations ...string) *Query {
	for _, r := range relations {
		q.values.Add("populate", r)
	}
	return q
}

// Param sets an arbitrary raw query parameter.
func (q *Query) Param(key, value string) *Query {
	q.values.Set(key, value)
	return q
}

// Sort adds sort entries, e.g. "fechaInicio:desc".
func (q *Query) Sort(fields ...string) *Query {
	for _, f := range fields {
		q.values.Add("sort", f)
	}
	return q
}

// FilterEq adds an equality filter. The path is the dotted relation path:
// "club.documentId" becomes filters[club][documentId][$eq]=value.
func (q *Query) FilterEq(path, value string) *Query {
	q.values.Set(bracketPath(path)+"[$eq]", value)
	return q
}

// SearchOr adds one $or clause per field, matching term case-insensitively
// as a substring: filters[$or][N][field][$containsi]=term. Successive calls
// keep extending the same $or group.
func (q *Query) SearchOr(term string, fields ...string) *Query {
	if term == "" {
		return q
	}
	for _, f := range fields {
		key := fmt.Sprintf("filters[$or][%d]%s[$containsi]", q.orIdx, bracketFields(f))
		q.values.Set(key, term)
		q.orIdx++
	}
	return q
}

// Encode renders the query string, without a leading "?". Deterministic:
// keys are sorted, repeated keys keep insertion order.
func (q *Query) Encode() string {
	return q.values.Encode()
}

// bracketPath turns "club.documentId" into "filters[club][documentId]".
func bracketPath(path string) string {
	return "filters" + bracketFields(path)
}

func bracketFields(path string) string {
	var b strings.Builder
	for _, part := range strings.Split(path, ".") {
		b.WriteString("[")
		b.WriteString(part)
		b.WriteString("]")
	}
	return b.String()
}
