package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// TemperamentSeparator joins temperament traits for display.
const TemperamentSeparator = ", "

// ErrMissingField is returned when a breed object lacks one of its keys.
var ErrMissingField = errors.New("missing required field")

// Breed is one dog breed as served by the breed API.
type Breed struct {
	Name           string   `json:"name"`
	Origin         string   `json:"origin"`
	Size           string   `json:"size"`           // e.g. "Small", "Medium", "Large"
	Coat           string   `json:"coat"`           // e.g. "Short", "Curly"
	Temperament    []string `json:"temperament"`    // ordered traits
	LifeExpectancy string   `json:"lifeExpectancy"` // free-form range like "10-12 years"
	Description    string   `json:"description"`
}

// breedWire mirrors Breed with pointers so absent keys can be told from empty values.
type breedWire struct {
	Name           *string   `json:"name"`
	Origin         *string   `json:"origin"`
	Size           *string   `json:"size"`
	Coat           *string   `json:"coat"`
	Temperament    *[]string `json:"temperament"`
	LifeExpectancy *string   `json:"lifeExpectancy"`
	Description    *string   `json:"description"`
}

// UnmarshalJSON rejects objects that omit a key or carry null for it.
// Unknown keys are ignored.
func (b *Breed) UnmarshalJSON(data []byte) error {
	var w breedWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	required := []struct {
		key     string
		present bool
	}{
		{"name", w.Name != nil},
		{"origin", w.Origin != nil},
		{"size", w.Size != nil},
		{"coat", w.Coat != nil},
		{"temperament", w.Temperament != nil && *w.Temperament != nil},
		{"lifeExpectancy", w.LifeExpectancy != nil},
		{"description", w.Description != nil},
	}
	for _, f := range required {
		if !f.present {
			return fmt.Errorf("%w: %s", ErrMissingField, f.key)
		}
	}

	*b = Breed{
		Name:           *w.Name,
		Origin:         *w.Origin,
		Size:           *w.Size,
		Coat:           *w.Coat,
		Temperament:    *w.Temperament,
		LifeExpectancy: *w.LifeExpectancy,
		Description:    *w.Description,
	}
	return nil
}

// TemperamentText returns the traits joined for display.
func (b Breed) TemperamentText() string {
	return strings.Join(b.Temperament, TemperamentSeparator)
}

// Clone returns a copy that shares no memory with b.
func (b Breed) Clone() Breed {
	b.Temperament = slices.Clone(b.Temperament)
	if b.Temperament == nil {
		b.Temperament = []string{}
	}
	return b
}

// Equal reports whether two breeds carry the same values field for field.
func (b Breed) Equal(other Breed) bool {
	return b.Name == other.Name &&
		b.Origin == other.Origin &&
		b.Size == other.Size &&
		b.Coat == other.Coat &&
		slices.Equal(b.Temperament, other.Temperament) &&
		b.LifeExpectancy == other.LifeExpectancy &&
		b.Description == other.Description
}

// CloneBreeds deep copies a collection. The result is never nil.
func CloneBreeds(breeds []Breed) []Breed {
	out := make([]Breed, len(breeds))
	for i, b := range breeds {
		out[i] = b.Clone()
	}
	return out
}

// DecodeBreeds parses a JSON array of breed objects, keeping array order.
func DecodeBreeds(data []byte) ([]Breed, error) {
	var breeds []Breed
	if err := json.Unmarshal(data, &breeds); err != nil {
		return nil, fmt.Errorf("failed to decode breeds: %w", err)
	}
	if breeds == nil {
		// "null" is not an array
		return nil, errors.New("failed to decode breeds: body is not a JSON array")
	}
	return breeds, nil
}
