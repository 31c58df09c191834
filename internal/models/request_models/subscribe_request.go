package request_models

// SubscribeRequest carries the signup email plus optional quiz context used
// for mailing-list segmentation.
type SubscribeRequest struct {
	Email       string `json:"email"`
	Recipient   string `json:"recipient,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Personality string `json:"personality,omitempty"`
}
