// Package twoway provides a bidirectional map: a container that keeps a strict
// one-to-one correspondence between two key spaces and exposes both directions
// as first-class lookup views.
//
// # Model
//
// A Map[A, B] owns two stores:
//   - the forward store, mapping A to B,
//   - the backward store, mapping B to A.
//
// Every entry (a, b) present forward is present backward as (b, a), and vice
// versa. A mutation either fully succeeds or leaves both stores exactly as they
// were: Add looks up both keys before inserting forward, then backward, and
// removes the forward insertion again if the backward one is rejected.
//
// # Views
//
// Forward and Backward return View values. A View is a live, read-only
// projection of one store: it holds a reference, never a copy, so any change
// made through the Map is visible immediately. A View exposes no mutation.
//
// Lookups come in two flavours, on both views:
//
//	v, ok := m.Forward().Load(a)   // comma-ok
//	v, err := m.Forward().Get(a)   // ErrKeyNotFound when absent
//
// # Equality
//
// Each store is parameterised by its own Comparer. Default uses Go equality;
// Strings, FoldStrings, Bytes and Stringers cover the usual overrides, and
// ComparerFunc builds any other strategy. A Comparer that also implements
// Cloner has its keys cloned into the map and out of every view.
//
// # Concurrency
//
// Map is not safe for concurrent use. Mutating a Map while another goroutine
// reads or enumerates it is undefined; callers serialize access themselves,
// or wrap the map with NewSynced. Synced iterators work on a snapshot, so
// their loop bodies may use the same Synced map.
//
// Example:
//
//	m := twoway.New[string, int]()
//	_ = m.Add("x", 1)
//	a, _ := m.Backward().Load(1) // "x"
package twoway
