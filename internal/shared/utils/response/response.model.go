package response

// GeneralResponse is the single envelope shape every endpoint returns.
type GeneralResponse struct {
	Succeeded bool        `json:"succeeded"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
	PageMeta  *PageMeta   `json:"pageMeta,omitempty"`
}

// PageMeta describes a page of a listing.
type PageMeta struct {
	PageNumber   int   `json:"pageNumber"`
	PageSize     int   `json:"pageSize"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int   `json:"totalPages"`
}
