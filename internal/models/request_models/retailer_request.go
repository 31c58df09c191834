package request_models

type RetailerLinkRequest struct {
	Tags []string `json:"tags"`
	Term string   `json:"term"`
}
