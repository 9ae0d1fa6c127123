package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Field   bool
}

const (
	escape    = "\x1b"
	resetCode = 0
	boldCode  = 1
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

// DefaultGlyphs lists the variant markers followed by the per-field icons used
// when an entry is rendered in the list.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 5)

	g = append(g, Glyph{
		Key:     "Finished",
		Symbol:  "✅",
		Meaning: "finished entry",
	}, Glyph{
		Key:     "Pending",
		Symbol:  "⛔",
		Meaning: "pending entry",
	}, Glyph{
		Key:     "title",
		Symbol:  "🧔",
		Meaning: "title",
		Field:   true,
	}, Glyph{
		Key:     "location",
		Symbol:  "🎏",
		Meaning: "location",
		Field:   true,
	}, Glyph{
		Key:     "tag",
		Symbol:  "🆔",
		Meaning: "tag",
		Field:   true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Mark int
type Icon int

const (
	Finished Mark = iota
	Pending
	Title Icon = iota
	Location
	Tag
)

func (m Mark) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Mark) String() string {
	return m.Glyph().String()
}

func (i Icon) Glyph() Glyph {
	return DefaultGlyphs()[i]
}

func (i Icon) String() string {
	return i.Glyph().String()
}
