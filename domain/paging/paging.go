// Package paging holds the pagination window shared by paginated
// repository results.
package paging

// Info describes the server-reported page window of a collection.
type Info struct {
	Page      int
	PageSize  int
	PageCount int
	Total     int
}
