package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound  = errors.New("catalog not found")
	ErrMalformed = errors.New("catalog malformed")
)

// MalformedError describes why a catalog document was rejected.
// Index is -1 when the problem is with the document as a whole.
type MalformedError struct {
	Index  int
	Field  string
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformed, e.Reason)
	}
	if e.Field == "" {
		return fmt.Sprintf("%v: record %d: %s", ErrMalformed, e.Index, e.Reason)
	}
	return fmt.Sprintf("%v: record %d: field %s: %s", ErrMalformed, e.Index, e.Field, e.Reason)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// Product is one immutable catalog record
type Product struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Rating   float64         `json:"rating"`
	InStock  bool            `json:"in_stock"`
}

// Catalog is the ordered, read-only product list loaded at startup
type Catalog struct {
	products []Product
	source   string
}

// rawProduct uses pointers so absent fields can be told apart from zero values.
type rawProduct struct {
	Name     *string  `json:"name" validate:"required,min=1"`
	Category *string  `json:"category" validate:"required,min=1"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Rating   *float64 `json:"rating" validate:"required"`
	InStock  *bool    `json:"in_stock" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates the catalog at path. Either every record is
// returned or an error matching ErrNotFound / ErrMalformed.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.source = path

	log.Printf("Catalog: loaded %d products from %s", c.Len(), path)
	return c, nil
}

// Parse decodes a JSON array of product objects
func Parse(r io.Reader) (*Catalog, error) {
	var raw []json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &MalformedError{Index: -1, Reason: fmt.Sprintf("expected a JSON array of products: %v", err)}
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, &MalformedError{Index: -1, Reason: "unexpected content after the product array"}
	}
	if raw == nil {
		return nil, &MalformedError{Index: -1, Reason: "expected a JSON array of products, got null"}
	}

	products := make([]Product, 0, len(raw))
	for i, msg := range raw {
		p, err := parseRecord(i, msg)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return &Catalog{products: products}, nil
}

func parseRecord(i int, msg json.RawMessage) (Product, error) {
	var rp rawProduct
	if err := json.Unmarshal(msg, &rp); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Product{}, &MalformedError{Index: i, Field: typeErr.Field, Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)}
		}
		return Product{}, &MalformedError{Index: i, Reason: err.Error()}
	}

	if err := validate.Struct(rp); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return Product{}, &MalformedError{Index: i, Field: jsonName(fe.StructField()), Reason: describeTag(fe)}
		}
		return Product{}, &MalformedError{Index: i, Reason: err.Error()}
	}

	return Product{
		Name:     *rp.Name,
		Category: *rp.Category,
		Price:    decimal.NewFromFloat(*rp.Price),
		Rating:   *rp.Rating,
		InStock:  *rp.InStock,
	}, nil
}

func jsonName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Category":
		return "category"
	case "Price":
		return "price"
	case "Rating":
		return "rating"
	case "InStock":
		return "in_stock"
	default:
		return structField
	}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing"
	case "min":
		return "must not be empty"
	case "gte":
		return "must not be negative"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// New builds a catalog from products already in memory (tests, fixtures)
func New(products []Product) *Catalog {
	cp := make([]Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp}
}

// Products returns a copy of the catalog in load order
func (c *Catalog) Products() []Product {
	cp := make([]Product, len(c.products))
	copy(cp, c.products)
	return cp
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Source is the path the catalog was loaded from, if any
func (c *Catalog) Source() string {
	return c.source
}

// Categories returns the distinct category labels, sorted
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// PriceRange returns the lowest and highest price; zero values when empty
func (c *Catalog) PriceRange() (decimal.Decimal, decimal.Decimal) {
	if len(c.products) == 0 {
		return decimal.Zero, decimal.Zero
	}
	lo, hi := c.products[0].Price, c.products[0].Price
	for _, p := range c.products[1:] {
		lo = decimal.Min(lo, p.Price)
		hi = decimal.Max(hi, p.Price)
	}
	return lo, hi
}

// RatingRange returns the lowest and highest rating; zero values when empty
func (c *Catalog) RatingRange() (float64, float64) {
	if len(c.products) == 0 {
		return 0, 0
	}
	lo, hi := c.products[0].Rating, c.products[0].Rating
	for _, p := range c.products[1:] {
		lo = min(lo, p.Rating)
		hi = max(hi, p.Rating)
	}
	return lo, hi
}
