package request_models

type SearchRequest struct {
	Query string `json:"query"`
}
