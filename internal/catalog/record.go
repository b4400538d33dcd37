// Package catalog provides the record collection, its file-backed
// store, and the query logic for filtering and limiting results.
package catalog

// Record is one item of the catalog collection. Category is the field
// queries filter on; the remaining fields are payload passed through to
// clients unchanged.
type Record struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	InStock  bool    `json:"inStock"`
}
