package twoway

import (
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"
)

// Entry is one association between the two key spaces.
type Entry[A, B any] struct {
	A A
	B B
}

// Pairs returns the entries as an ordered sequence, suitable for From.
func Pairs[A, B any](entries ...Entry[A, B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for _, e := range entries {
			if !yield(e.A, e.B) {
				return
			}
		}
	}
}

// Map is a bidirectional map between key spaces A and B.
//
// A Map is not safe for concurrent use; see NewSynced.
type Map[A, B any] struct {
	forward  *store[A, B]
	backward *store[B, A]
	logger   *zap.Logger
}

// New returns an empty map using Go equality in both directions.
func New[A, B comparable](opts ...Option) *Map[A, B] {
	return NewFunc(Default[A](), Default[B](), opts...)
}

// NewFunc returns an empty map with an explicit Comparer per direction.
func NewFunc[A, B any](forward Comparer[A], backward Comparer[B], opts ...Option) *Map[A, B] {
	o := newOptions(opts)
	m := &Map[A, B]{
		forward:  newStore[A, B](forward, o.capacity),
		backward: newStore[B, A](backward, o.capacity),
		logger:   o.logger,
	}
	link(m.forward, m.backward)
	return m
}

// From builds a map from entries, added one at a time in order.
// On the first conflicting entry it returns a nil map and the Add error.
func From[A, B comparable](entries iter.Seq2[A, B], opts ...Option) (*Map[A, B], error) {
	return FromFunc(entries, Default[A](), Default[B](), opts...)
}

// FromFunc is From with an explicit Comparer per direction.
func FromFunc[A, B any](
	entries iter.Seq2[A, B],
	forward Comparer[A],
	backward Comparer[B],
	opts ...Option,
) (*Map[A, B], error) {
	m := NewFunc(forward, backward, opts...)
	if entries == nil {
		return m, nil
	}
	i := 0
	for a, b := range entries {
		if err := m.Add(a, b); err != nil {
			m.logger.Debug("construction aborted",
				zap.Int("index", i),
				zap.Error(err),
			)
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		i++
	}
	return m, nil
}

// Add associates a with b.
//
// It fails with ErrNullKey if either key is nil, and with ErrDuplicateKey if a
// is already present forward or b is already present backward. Both keys are
// looked up before either store changes, so on failure, including a panicking
// Comparer, the map is left exactly as it was. Keys of a Comparer that is also
// a Cloner are cloned before they are stored.
func (m *Map[A, B]) Add(a A, b B) error {
	if m.forward.isNil(a) {
		return fmt.Errorf("%w: forward key of type %T", ErrNullKey, a)
	}
	if m.backward.isNil(b) {
		return fmt.Errorf("%w: backward key of type %T", ErrNullKey, b)
	}

	if existing, ok := m.forward.load(a); ok {
		return fmt.Errorf("%w: %v is already mapped to %v", ErrDuplicateKey, a, existing)
	}
	if existing, ok := m.backward.load(b); ok {
		return fmt.Errorf("%w: %v is already mapped from %v", ErrDuplicateKey, b, existing)
	}

	a, b = m.forward.copyKey(a), m.backward.copyKey(b)
	m.forward.insert(a, b)
	if existing, ok := m.backward.insert(b, a); !ok {
		m.forward.remove(a)
		m.logger.Debug("rolled back forward insertion",
			zap.Any("forward", a),
			zap.Any("backward", b),
			zap.Any("mappedFrom", existing),
		)
		return fmt.Errorf("%w: %v is already mapped from %v", ErrDuplicateKey, b, existing)
	}
	return nil
}

// AddEntry is Add for an Entry.
func (m *Map[A, B]) AddEntry(e Entry[A, B]) error {
	return m.Add(e.A, e.B)
}

// Remove deletes the entry keyed by a in the forward direction.
// It reports whether an entry was found.
func (m *Map[A, B]) Remove(a A) bool {
	b, ok := m.forward.remove(a)
	if !ok {
		return false
	}
	m.backward.remove(b)
	return true
}

// RemoveBackward deletes the entry keyed by b in the backward direction.
func (m *Map[A, B]) RemoveBackward(b B) bool {
	a, ok := m.backward.remove(b)
	if !ok {
		return false
	}
	m.forward.remove(a)
	return true
}

// RemoveEntry deletes e only if exactly that pair is present.
func (m *Map[A, B]) RemoveEntry(e Entry[A, B]) bool {
	if !m.Contains(e.A, e.B) {
		return false
	}
	return m.Remove(e.A)
}

// Contains reports whether a maps to b forward and b maps to a backward.
func (m *Map[A, B]) Contains(a A, b B) bool {
	gotB, ok := m.forward.load(a)
	if !ok {
		return false
	}
	gotA, ok := m.backward.load(b)
	if !ok {
		return false
	}
	return m.backward.cmp.Equal(gotB, b) && m.forward.cmp.Equal(gotA, a)
}

// Clear removes every entry.
func (m *Map[A, B]) Clear() {
	n := m.forward.len()
	m.forward.clear()
	m.backward.clear()
	m.logger.Debug("cleared", zap.Int("entries", n))
}

// Len returns the number of entries.
func (m *Map[A, B]) Len() int {
	return m.forward.len()
}

// Forward returns the live read-only A → B view.
func (m *Map[A, B]) Forward() View[A, B] {
	return View[A, B]{s: m.forward}
}

// Backward returns the live read-only B → A view.
func (m *Map[A, B]) Backward() View[B, A] {
	return View[B, A]{s: m.backward}
}

// All yields every entry in forward insertion order.
func (m *Map[A, B]) All() iter.Seq2[A, B] {
	return m.forward.all()
}

// Entries returns a copy of every entry in forward insertion order.
func (m *Map[A, B]) Entries() []Entry[A, B] {
	out := make([]Entry[A, B], 0, m.forward.len())
	for a, b := range m.forward.all() {
		out = append(out, Entry[A, B]{A: a, B: b})
	}
	return out
}

// String renders the map in forward insertion order, e.g. Bi[x:1 y:2].
func (m *Map[A, B]) String() string {
	var sb strings.Builder
	sb.WriteString("Bi[")
	first := true
	for a, b := range m.forward.all() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", a, b)
	}
	sb.WriteByte(']')
	return sb.String()
}
