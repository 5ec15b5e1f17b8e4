// Package pos defines the closed part-of-speech enumeration the markov
// engine reasons about, and the adapter that folds an external tagger's
// tags onto it.
package pos

import "github.com/cognicore/markov/pkg/markov/internalerr"

// Pos is the closed set of part-of-speech tags the engine understands,
// plus the EOS sentinel used inside a generation skeleton.
type Pos int

const (
	Other Pos = iota
	Noun
	Verb
	Adj
	Adv
	Det
	Pron
	Prep
	Conj
	Num
	EOS
)

var names = map[Pos]string{
	Other: "OTHER",
	Noun:  "NOUN",
	Verb:  "VERB",
	Adj:   "ADJ",
	Adv:   "ADV",
	Det:   "DET",
	Pron:  "PRON",
	Prep:  "PREP",
	Conj:  "CONJ",
	Num:   "NUM",
	EOS:   "EOS",
}

// String renders the canonical tag name, used by config/snapshot round-trips.
func (p Pos) String() string {
	if n, ok := names[p]; ok {
		return n
	}
	return "OTHER"
}

var byName = func() map[string]Pos {
	m := make(map[string]Pos, len(names))
	for p, n := range names {
		m[n] = p
	}
	return m
}()

// Parse resolves a canonical tag name (as found in config.Config's
// subject_pos_priority or tag_map values) back to a Pos. Unknown names
// fold to Other.
func Parse(name string) Pos {
	if p, ok := byName[name]; ok {
		return p
	}
	return Other
}

// Adapter maps an external tagger's raw tag strings onto the closed Pos
// set. Tags it does not recognize fold to Other, never an error — the
// tagger vocabulary is not under this engine's control.
type Adapter struct {
	tagMap map[string]Pos
}

// NewAdapter builds an adapter from a raw-tag -> canonical-Pos-name map,
// the shape config.Config.TagMap loads from YAML.
func NewAdapter(tagMap map[string]string) *Adapter {
	a := &Adapter{tagMap: make(map[string]Pos, len(tagMap))}
	for tag, name := range tagMap {
		a.tagMap[tag] = Parse(name)
	}
	return a
}

// Resolve converts one raw tagger tag to a Pos, folding anything absent
// from the map to Other.
func (a *Adapter) Resolve(tag string) Pos {
	if p, ok := a.tagMap[tag]; ok {
		return p
	}
	return Other
}

// OneHot returns a length-n vector of zeros with a single 1 at index i.
// It fails with ErrOutOfRange (via the returned error) when i is not in
// [0, n).
func OneHot(i, n int) ([]int, error) {
	if i < 0 || i >= n {
		return nil, internalerr.ErrOutOfRange
	}
	v := make([]int, n)
	v[i] = 1
	return v, nil
}
