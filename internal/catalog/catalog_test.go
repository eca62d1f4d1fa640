package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const sampleJSON = `[
  {"name": "Smart Speaker", "category": "Electronics", "price": 49.99, "rating": 4.2, "in_stock": true},
  {"name": "Yoga Mat", "category": "Fitness", "price": 25.0, "rating": 4.6, "in_stock": false},
  {"name": "Blender", "category": "Kitchen", "price": 89.5, "rating": 4.0, "in_stock": true}
]`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, sampleJSON)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if c.Source() != path {
		t.Errorf("Source() = %q, want %q", c.Source(), path)
	}

	products := c.Products()
	if products[0].Name != "Smart Speaker" || products[1].Name != "Yoga Mat" || products[2].Name != "Blender" {
		t.Errorf("load order not preserved: %+v", products)
	}
	if !products[0].Price.Equal(decimal.RequireFromString("49.99")) {
		t.Errorf("price = %s, want 49.99", products[0].Price)
	}
	if products[1].InStock {
		t.Error("Yoga Mat should be out of stock")
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
	if errors.Is(err, ErrMalformed) {
		t.Error("not-found error must not match ErrMalformed")
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantIndex int
		wantField string
	}{
		{"not json", `{{{`, -1, ""},
		{"object instead of array", `{"name": "x"}`, -1, ""},
		{"null document", `null`, -1, ""},
		{"missing name", `[{"category": "Books", "price": 1, "rating": 4, "in_stock": true}]`, 0, "name"},
		{"empty name", `[{"name": "", "category": "Books", "price": 1, "rating": 4, "in_stock": true}]`, 0, "name"},
		{"missing in_stock", `[{"name": "A", "category": "Books", "price": 1, "rating": 4}]`, 0, "in_stock"},
		{"missing rating on second record", `[
			{"name": "A", "category": "Books", "price": 1, "rating": 4, "in_stock": true},
			{"name": "B", "category": "Books", "price": 1, "in_stock": true}]`, 1, "rating"},
		{"price as string", `[{"name": "A", "category": "Books", "price": "cheap", "rating": 4, "in_stock": true}]`, 0, "price"},
		{"negative price", `[{"name": "A", "category": "Books", "price": -3, "rating": 4, "in_stock": true}]`, 0, "price"},
		{"in_stock as string", `[{"name": "A", "category": "Books", "price": 3, "rating": 4, "in_stock": "yes"}]`, 0, "in_stock"},
		{"record not an object", `["A"]`, 0, ""},
		{"trailing partial object", `[{"name": "A", "category": "Books", "price": 3, "rating": 4, "in_stock": true}] {"oops": `, -1, ""},
		{"second array", `[] []`, -1, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.content))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("Load() error = %v, want ErrMalformed", err)
			}
			if errors.Is(err, ErrNotFound) {
				t.Error("malformed error must not match ErrNotFound")
			}

			var me *MalformedError
			if !errors.As(err, &me) {
				t.Fatalf("error %v is not a *MalformedError", err)
			}
			if me.Index != tc.wantIndex {
				t.Errorf("Index = %d, want %d", me.Index, tc.wantIndex)
			}
			if me.Field != tc.wantField {
				t.Errorf("Field = %q, want %q", me.Field, tc.wantField)
			}
		})
	}
}

func TestParseEmptyArray(t *testing.T) {
	c, err := Parse(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if cats := c.Categories(); len(cats) != 0 {
		t.Errorf("Categories() = %v, want none", cats)
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	products := c.Products()
	products[0].Name = "mutated"

	if c.Products()[0].Name != "Smart Speaker" {
		t.Error("catalog was mutated through Products()")
	}
}

func TestCategoriesAndRanges(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cats := c.Categories()
	want := []string{"Electronics", "Fitness", "Kitchen"}
	if strings.Join(cats, ",") != strings.Join(want, ",") {
		t.Errorf("Categories() = %v, want %v", cats, want)
	}

	lo, hi := c.PriceRange()
	if !lo.Equal(decimal.NewFromInt(25)) || !hi.Equal(decimal.RequireFromString("89.5")) {
		t.Errorf("PriceRange() = %s..%s, want 25..89.5", lo, hi)
	}

	rlo, rhi := c.RatingRange()
	if rlo != 4.0 || rhi != 4.6 {
		t.Errorf("RatingRange() = %v..%v, want 4..4.6", rlo, rhi)
	}
}

func TestParseAllowsTrailingWhitespace(t *testing.T) {
	cat, err := Parse(strings.NewReader("[{\"name\": \"A\", \"category\": \"Books\", \"price\": 3, \"rating\": 4, \"in_stock\": true}]\n\n  "))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cat.Len())
	}
}
