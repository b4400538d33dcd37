package catalog

import (
	"net/url"
	"strconv"
)

// Query parameter names recognized by the data route.
const (
	ParamCategory = "category"
	ParamLimit    = "limit"
)

// Query holds the parsed filter and limit parameters for a data
// request. The zero value matches everything.
type Query struct {
	Category string
	Limit    int
	HasLimit bool
}

// ParseQuery extracts the supported parameters from a query string.
//
// An empty category means no filtering. A limit that cannot be parsed
// as a non-negative integer means no limit; malformed input never fails
// the request. This lenient policy is deliberate and covered by tests.
func ParseQuery(values url.Values) Query {
	q := Query{
		Category: values.Get(ParamCategory),
	}

	if raw := values.Get(ParamLimit); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			q.Limit = n
			q.HasLimit = true
		}
	}

	return q
}

// Apply returns the records matching the query: the category filter
// runs first, then the limit caps the filtered subset. The result is
// always a subsequence of the input in original order; the input slice
// is never modified.
func (q Query) Apply(records []Record) []Record {
	result := records

	if q.Category != "" {
		filtered := make([]Record, 0, len(records))
		for _, r := range records {
			if r.Category == q.Category {
				filtered = append(filtered, r)
			}
		}
		result = filtered
	}

	if q.HasLimit && q.Limit < len(result) {
		result = result[:q.Limit]
	}

	return result
}
