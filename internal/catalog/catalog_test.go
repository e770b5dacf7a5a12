package catalog

import "testing"

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Load(writeManifest(t, validManifest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cat
}

func TestCatalog_GetUnknownKey(t *testing.T) {
	cat := testCatalog(t)

	if _, ok := cat.Get("vegetables"); ok {
		t.Error("expected unknown key to report not found")
	}
	if cat.Has("vegetables") {
		t.Error("expected Has to be false for unknown key")
	}
	if !cat.Has("colors") {
		t.Error("expected Has to be true for known key")
	}
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	cat := testCatalog(t)

	// Mutating what Get returns must not affect later reads.
	first, _ := cat.Get("colors")
	first.Items[0].Slug = "mutated"
	first.Label = "Mutated"

	second, _ := cat.Get("colors")
	if second.Items[0].Slug != "red" {
		t.Errorf("catalog item mutated through accessor copy: %q", second.Items[0].Slug)
	}
	if second.Label != "Colors" {
		t.Errorf("catalog label mutated through accessor copy: %q", second.Label)
	}

	categories := cat.Categories()
	categories[0].Items[0].Slug = "mutated-again"

	third, _ := cat.Get("colors")
	if third.Items[0].Slug != "red" {
		t.Errorf("catalog mutated through Categories copy: %q", third.Items[0].Slug)
	}
}

func TestCatalog_UniqueKeysAndSlugs(t *testing.T) {
	cat := testCatalog(t)

	keys := make(map[string]bool)
	for _, c := range cat.Categories() {
		if c.Key == "" {
			t.Error("empty category key in loaded catalog")
		}
		if keys[c.Key] {
			t.Errorf("duplicate category key %q", c.Key)
		}
		keys[c.Key] = true

		slugs := make(map[string]bool)
		for _, item := range c.Items {
			if item.Slug == "" {
				t.Errorf("empty slug in category %q", c.Key)
			}
			if slugs[item.Slug] {
				t.Errorf("duplicate slug %q in category %q", item.Slug, c.Key)
			}
			slugs[item.Slug] = true
		}
	}
}
