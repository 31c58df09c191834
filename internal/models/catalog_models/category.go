package catalog_models

// Category is a browsable slice of the catalog, defined entirely by its
// filter so the line-up is a data edit.
type Category struct {
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Filter      CategoryFilter `json:"filter"`
}
