// Package store owns the category→keyword rule mapping and its persisted
// YAML document.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore manages loading, mutating and saving of category rules.
// Every successful mutation overwrites the whole document on disk, so a
// reload after AddCategory/AddKeyword returns true always reflects the
// change.
type CategoryStore struct {
	path   string
	logger logging.Logger
	rules  []models.CategoryRule
}

// NewCategoryStore creates a store backed by the YAML document at path.
func NewCategoryStore(path string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{
		path:   path,
		logger: logger,
	}
}

// Load reads the rules document from disk. A missing file is not an error:
// the store initializes to the single "Uncategorized" category. The
// "Uncategorized" category is guaranteed to exist after Load regardless of
// the file contents.
func (s *CategoryStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", s.path).Warn("Categories file not found, starting empty")
			s.rules = []models.CategoryRule{{Name: models.CategoryUncategorized}}
			return nil
		}
		return fmt.Errorf("error reading categories file: %w", err)
	}

	var doc models.RulesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("error parsing categories file: %w", err)
	}
	s.rules = doc.Categories

	if !s.HasCategory(models.CategoryUncategorized) {
		s.rules = append([]models.CategoryRule{{Name: models.CategoryUncategorized}}, s.rules...)
	}

	s.logger.WithField("count", len(s.rules)).Debug("Loaded category rules")
	return nil
}

// AddCategory inserts a new empty category and persists the document.
// It returns false without mutating anything if the name is empty or the
// category already exists.
func (s *CategoryStore) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || s.HasCategory(name) {
		return false
	}

	s.rules = append(s.rules, models.CategoryRule{Name: name})
	if err := s.save(); err != nil {
		s.logger.WithError(err).Error("Failed to save categories after add")
		s.rules = s.rules[:len(s.rules)-1]
		return false
	}

	s.logger.WithField("category", name).Info("Added category")
	return true
}

// AddKeyword registers a keyword under an existing category and persists
// the document. The keyword is trimmed first; it returns false if the
// trimmed keyword is empty, the category does not exist, or the keyword is
// already present for that category (compared as stored).
func (s *CategoryStore) AddKeyword(category, keyword string) bool {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return false
	}

	idx := s.categoryIndex(category)
	if idx < 0 {
		return false
	}

	for _, existing := range s.rules[idx].Keywords {
		if existing == keyword {
			return false
		}
	}

	s.rules[idx].Keywords = append(s.rules[idx].Keywords, keyword)
	if err := s.save(); err != nil {
		s.logger.WithError(err).Error("Failed to save categories after keyword add")
		s.rules[idx].Keywords = s.rules[idx].Keywords[:len(s.rules[idx].Keywords)-1]
		return false
	}

	s.logger.WithField("category", category).WithField("keyword", keyword).Info("Added keyword")
	return true
}

// CategoryNames returns category names in insertion order.
func (s *CategoryStore) CategoryNames() []string {
	names := make([]string, len(s.rules))
	for i, rule := range s.rules {
		names[i] = rule.Name
	}
	return names
}

// Rules returns a copy of the rule set in listing order. The copy keeps
// callers from mutating the store's state behind its back.
func (s *CategoryStore) Rules() []models.CategoryRule {
	rules := make([]models.CategoryRule, len(s.rules))
	for i, rule := range s.rules {
		rules[i] = models.CategoryRule{
			Name:     rule.Name,
			Keywords: append([]string(nil), rule.Keywords...),
		}
	}
	return rules
}

// HasCategory reports whether a category with the given name exists.
func (s *CategoryStore) HasCategory(name string) bool {
	return s.categoryIndex(name) >= 0
}

func (s *CategoryStore) categoryIndex(name string) int {
	for i, rule := range s.rules {
		if rule.Name == name {
			return i
		}
	}
	return -1
}

// save overwrites the whole rules document on disk.
func (s *CategoryStore) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.RulesDocument{Categories: s.rules})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := os.WriteFile(s.path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	return nil
}
