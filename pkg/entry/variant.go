package entry

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/maplog/pkg/glyph"
)

// Variant discriminates the two kinds of entry. It decides both rendering and
// how a stored record is reconstructed.
type Variant string

const (
	Finished Variant = "Finished"
	Pending  Variant = "Pending"
)

// ErrUnknownVariant is returned for variants other than Finished and Pending.
var ErrUnknownVariant = errors.New("entry: unknown variant")

// AllVariants returns the supported variants in display order.
func AllVariants() []Variant {
	return []Variant{Finished, Pending}
}

// ParseVariant matches raw exactly after trimming spaces.
func ParseVariant(raw string) (Variant, error) {
	v := Variant(strings.TrimSpace(raw))
	for _, candidate := range AllVariants() {
		if candidate == v {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownVariant, raw)
}

func (v Variant) Glyph() glyph.Glyph {
	if v == Pending {
		return glyph.Pending.Glyph()
	}
	return glyph.Finished.Glyph()
}

func (v Variant) String() string {
	return string(v)
}
