// Package stack models the epitaxial layer stack and electrical contacts of a
// compound-semiconductor transistor.
//
// # Values
//
// [Layer] and [Contact] are immutable values. They are validated once by
// [NewLayer] and [NewContact] and expose their fields through accessors only;
// an "edit" such as [Layer.WithThickness] returns a new validated value.
// Construction failures carry [errors.ErrCodeValidation].
//
// # Ordering
//
// A [LayerStack] keeps layers in epitaxial growth order: the substrate (if
// any) first, the topmost layer last. The container only grows: [LayerStack.Append]
// adds on top and [LayerStack.InsertAfter] splices a layer directly after the
// first layer of a given type, which is how a back barrier is placed below
// the channel. Aggregate queries treat the substrate specially:
// [LayerStack.EpiThickness] excludes it.
//
// A [ContactSet] is an ordered, append-only list of contacts and is
// independent of the layer stack.
//
// # Concurrency
//
// Neither container is safe for concurrent mutation. Concurrent reads of a
// stack that is no longer being modified are fine.
//
// [errors.ErrCodeValidation]: github.com/matzehuels/epistack/pkg/errors
package stack
