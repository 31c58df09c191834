package catalog_models

type PriceRange string

const (
	PriceUnder25 PriceRange = "under25"
	Price25To50  PriceRange = "25to50"
	Price50To100 PriceRange = "50to100"
	PriceOver100 PriceRange = "over100"
)

type RecipientType string

const (
	RecipientGirlfriend RecipientType = "girlfriend"
	RecipientBoyfriend  RecipientType = "boyfriend"
	RecipientWife       RecipientType = "wife"
	RecipientHusband    RecipientType = "husband"
	RecipientPartner    RecipientType = "partner"
)

type Vibe string

const (
	VibeRomantic     Vibe = "romantic"
	VibePractical    Vibe = "practical"
	VibeExperiential Vibe = "experiential"
	VibeFunny        Vibe = "funny"
	VibeLuxury       Vibe = "luxury"
)

type RelationshipStage string

const (
	StageNew         RelationshipStage = "new"
	StageEstablished RelationshipStage = "established"
	StageLongterm    RelationshipStage = "longterm"
)

// Gift is one curated catalog record. The catalog is loaded once at startup
// and never written.
type Gift struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	PriceRange        PriceRange          `json:"priceRange"`
	RecipientType     []RecipientType     `json:"recipientType"`
	Interests         []string            `json:"interests"`
	Vibe              []Vibe              `json:"vibe"`
	RelationshipStage []RelationshipStage `json:"relationshipStage"`
	Notes             string              `json:"notes,omitempty"`
	// SearchTerm overrides the gift name when building retailer search
	// links; useful when the display name searches badly.
	SearchTerm string `json:"searchTerm,omitempty"`
}

type GiftMetadata struct {
	LastUpdated string `json:"lastUpdated"`
	TotalGifts  int    `json:"totalGifts"`
}

type GiftDatabase struct {
	Metadata        GiftMetadata          `json:"metadata"`
	Gifts           []Gift                `json:"gifts"`
	InterestOptions []string              `json:"interestOptions"`
	BudgetTiers     map[PriceRange]string `json:"budgetTiers"`
}

// CategoryFilter selects catalog gifts. Present fields are AND-combined; the
// values listed inside a field are OR-matched against the gift's own values.
type CategoryFilter struct {
	PriceRange    []PriceRange    `json:"priceRange,omitempty"`
	RecipientType []RecipientType `json:"recipientType,omitempty"`
	Vibe          []Vibe          `json:"vibe,omitempty"`
	Interests     []string        `json:"interests,omitempty"`
}

// Matches reports whether the gift satisfies every present predicate.
func (f CategoryFilter) Matches(g Gift) bool {
	if len(f.PriceRange) > 0 && !containsOne(f.PriceRange, []PriceRange{g.PriceRange}) {
		return false
	}
	if len(f.RecipientType) > 0 && !containsOne(f.RecipientType, g.RecipientType) {
		return false
	}
	if len(f.Vibe) > 0 && !containsOne(f.Vibe, g.Vibe) {
		return false
	}
	if len(f.Interests) > 0 && !containsOne(f.Interests, g.Interests) {
		return false
	}
	return true
}

func containsOne[T comparable](wanted, actual []T) bool {
	for _, a := range actual {
		for _, w := range wanted {
			if a == w {
				return true
			}
		}
	}
	return false
}
