package catalog

// Item is a single picture-word card within a category.
type Item struct {
	// Slug is the canonical identifier, unique within the category.
	// It is the lookup key for speech text and visuals.
	Slug string
	// Label is the display text shown under the picture.
	Label string
	// IconURL is an optional image resource path.
	IconURL string
}

// Category is an ordered collection of items under one key.
type Category struct {
	// Key is the identifier, unique across the catalog.
	Key string
	// Label is the display text for the home grid tile.
	Label string
	// Items is the ordered card list.
	Items []Item
}

// Catalog is the full set of categories, built once at startup and
// never mutated afterwards. Accessors return copies so callers cannot
// reach the backing storage.
type Catalog struct {
	categories []Category
	byKey      map[string]int
}

// Categories returns all categories in manifest order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = copyCategory(cat)
	}
	return out
}

// Get returns the category for a key, or false if the key is unknown.
func (c *Catalog) Get(key string) (Category, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Category{}, false
	}
	return copyCategory(c.categories[i]), true
}

// Has reports whether a category key exists.
func (c *Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

func copyCategory(cat Category) Category {
	items := make([]Item, len(cat.Items))
	copy(items, cat.Items)
	cat.Items = items
	return cat
}
