// Released under an MIT license. See LICENSE.

// Package env provides umlang's lexical environment type.
//
// An environment is an immutable association list. Extending an
// environment prepends bindings and never modifies the original, so
// closures can share the environment they captured with the code that
// goes on to shadow names in it.
package env

// T (env) is a single binding and the environment it extends.
// The empty environment is the nil *T.
type T[V any] struct {
	name  string
	value V
	next  *T[V]
}

// Empty returns the empty environment.
func Empty[V any]() *T[V] {
	return nil
}

// New creates an environment holding the bindings names[i] -> values[i].
// Later pairs shadow earlier pairs with the same name.
func New[V any](names []string, values []V) *T[V] {
	var e *T[V]

	return e.Extend(names, values)
}

// Bind returns e extended with the single binding k -> v.
func (e *T[V]) Bind(k string, v V) *T[V] {
	return &T[V]{name: k, value: v, next: e}
}

// Extend returns e extended with the bindings names[i] -> values[i].
// The names and values must be the same length.
func (e *T[V]) Extend(names []string, values []V) *T[V] {
	if len(names) != len(values) {
		panic("names and values must be the same length")
	}

	for i, k := range names {
		e = e.Bind(k, values[i])
	}

	return e
}

// Len returns the number of bindings in e, including shadowed ones.
func (e *T[V]) Len() int {
	n := 0
	for ; e != nil; e = e.next {
		n++
	}

	return n
}

// Lookup returns the value of the most recent binding for k.
func (e *T[V]) Lookup(k string) (v V, ok bool) {
	for ; e != nil; e = e.next {
		if e.name == k {
			return e.value, true
		}
	}

	return v, false
}

// Names returns every bound name, most recent first.
func (e *T[V]) Names() []string {
	var names []string
	for ; e != nil; e = e.next {
		names = append(names, e.name)
	}

	return names
}
