package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	// ErrManifestUnreadable is returned when the manifest file cannot be read.
	ErrManifestUnreadable = errors.New("catalog manifest unreadable")
	// ErrManifestMalformed is returned when the manifest fails to parse or validate.
	ErrManifestMalformed = errors.New("catalog manifest malformed")
)

// manifest mirrors the YAML layout of the asset source.
type manifest struct {
	Categories []manifestCategory `yaml:"categories"`
}

type manifestCategory struct {
	Key   string         `yaml:"key"`
	Label string         `yaml:"label"`
	Items []manifestItem `yaml:"items"`
}

type manifestItem struct {
	Slug  string `yaml:"slug"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

// Load reads the catalog manifest and builds an immutable catalog.
// Any problem with the source fails the whole load; a partial catalog
// is never returned.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestUnreadable, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestMalformed, err)
	}

	if len(m.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrManifestMalformed)
	}

	cat := &Catalog{
		categories: make([]Category, 0, len(m.Categories)),
		byKey:      make(map[string]int, len(m.Categories)),
	}

	for _, mc := range m.Categories {
		if mc.Key == "" {
			return nil, fmt.Errorf("%w: category with empty key", ErrManifestMalformed)
		}
		if _, exists := cat.byKey[mc.Key]; exists {
			return nil, fmt.Errorf("%w: duplicate category key %q", ErrManifestMalformed, mc.Key)
		}

		label := mc.Label
		if label == "" {
			label = LabelFromSlug(mc.Key)
		}

		items := make([]Item, 0, len(mc.Items))
		seen := make(map[string]bool, len(mc.Items))
		for _, mi := range mc.Items {
			if mi.Slug == "" {
				return nil, fmt.Errorf("%w: empty slug in category %q", ErrManifestMalformed, mc.Key)
			}
			if seen[mi.Slug] {
				return nil, fmt.Errorf("%w: duplicate slug %q in category %q", ErrManifestMalformed, mi.Slug, mc.Key)
			}
			seen[mi.Slug] = true

			itemLabel := mi.Label
			if itemLabel == "" {
				itemLabel = LabelFromSlug(mi.Slug)
			}

			items = append(items, Item{
				Slug:    mi.Slug,
				Label:   itemLabel,
				IconURL: mi.Icon,
			})
		}

		cat.byKey[mc.Key] = len(cat.categories)
		cat.categories = append(cat.categories, Category{
			Key:   mc.Key,
			Label: label,
			Items: items,
		})
	}

	return cat, nil
}

// LabelFromSlug derives a display label from a hyphenated identifier,
// e.g. "light-blue" becomes "Light Blue".
func LabelFromSlug(slug string) string {
	// cases.Caser carries transform state, so build one per call.
	return cases.Title(language.AmericanEnglish).String(strings.ReplaceAll(slug, "-", " "))
}
