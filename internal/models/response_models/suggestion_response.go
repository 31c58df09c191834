package response_models

// GiftSuggestion is one AI-generated gift idea. IDs are stamped at
// response-assembly time and are not stable across requests. Wire field
// names match the public search contract.
type GiftSuggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// SearchQuery is the brand-free term used for retailer searches;
	// Name may include a brand.
	SearchQuery   string   `json:"searchQuery"`
	Description   string   `json:"description"`
	PriceEstimate string   `json:"priceEstimate"`
	WhyItWorks    string   `json:"whyItWorks"`
	WhereToBuy    []string `json:"whereToBuy"`
	Tags          []string `json:"tags"`
	Accent        string   `json:"accent,omitempty"`
}

type SearchResponse struct {
	Suggestions []GiftSuggestion `json:"suggestions"`
}

type RetailerLinkResponse struct {
	Retailer string `json:"retailer"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}
