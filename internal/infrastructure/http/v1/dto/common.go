// Package dto provides Data Transfer Objects for API requests.
// Responses serialize the domain entities directly; their json tags
// define the wire contract.
package dto

// PageQuery carries the common list query parameters.
// Zero values fall back to the pagination defaults.
type PageQuery struct {
	SearchText string `form:"searchText"`
	PageIndex  int    `form:"pageIndex"`
	PageSize   int    `form:"pageSize"`
}
