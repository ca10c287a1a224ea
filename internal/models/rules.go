package models

// CategoryRule maps a user-visible category name to the set of Details
// keywords that classify into it. Keyword order carries no meaning; category
// order is the store's listing order and drives match evaluation.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// RulesDocument is the on-disk structure of the category rules file.
// A list (rather than a map) preserves category insertion order across
// load/save cycles.
type RulesDocument struct {
	Categories []CategoryRule `yaml:"categories"`
}
