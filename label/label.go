package label

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/mc-eval/bitset"
)

// ErrUnknownLabel indicates SetBit or AddLabelBitset was called for a label never
// added via AddLabel.
var ErrUnknownLabel = errors.New("label: unknown label")

// ErrDuplicateLabel indicates AddLabel was called twice for the same name.
var ErrDuplicateLabel = errors.New("label: duplicate label")

// ErrPositionOutOfRange indicates SetBit was called with pos outside
// [0, NumStates).
var ErrPositionOutOfRange = errors.New("label: position out of range")

// Set is a named collection of state bitsets (mcctx.Labeling).
type Set struct {
	numStates int
	names     []string // ascending, matching MRMC's "ascendingly sorted list"
	bitsets   map[string]*bitset.Set
}

// New constructs an empty Set over numStates states.
func New(numStates int) *Set {
	return &Set{numStates: numStates, bitsets: make(map[string]*bitset.Set)}
}

// AddLabel registers a new, initially-empty label in ascending order.
func (s *Set) AddLabel(name string) error {
	if _, ok := s.bitsets[name]; ok {
		return fmt.Errorf("label: AddLabel(%q): %w", name, ErrDuplicateLabel)
	}
	s.bitsets[name] = bitset.Zero(s.numStates)

	idx := sort.SearchStrings(s.names, name)
	s.names = append(s.names, "")
	copy(s.names[idx+1:], s.names[idx:])
	s.names[idx] = name

	return nil
}

// SetBit marks state pos as satisfying label. label must already exist via
// AddLabel.
func (s *Set) SetBit(labelName string, pos int) error {
	b, ok := s.bitsets[labelName]
	if !ok {
		return fmt.Errorf("label: SetBit(%q): %w", labelName, ErrUnknownLabel)
	}
	if pos < 0 || pos >= s.numStates {
		return fmt.Errorf("label: SetBit(%q, %d): %w", labelName, pos, ErrPositionOutOfRange)
	}
	b.SetBit(pos)

	return nil
}

// AddLabelBitset replaces label's bitset wholesale (mirroring
// add_label_bitset); label must already exist.
func (s *Set) AddLabelBitset(labelName string, b *bitset.Set) error {
	if _, ok := s.bitsets[labelName]; !ok {
		return fmt.Errorf("label: AddLabelBitset(%q): %w", labelName, ErrUnknownLabel)
	}
	s.bitsets[labelName] = b

	return nil
}

// NumStates implements mcctx.Labeling.
func (s *Set) NumStates() int { return s.numStates }

// Label implements mcctx.Labeling: returns the bitset for name and whether
// it is known (get_label_bitset returns NULL for an unknown label; here
// the boolean plays that role so the caller never dereferences a nil set).
func (s *Set) Label(name string) (*bitset.Set, bool) {
	b, ok := s.bitsets[name]

	return b, ok
}

// Names returns the labels in ascending order (print_labelling's iteration
// order).
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}
