// Released under an MIT license. See LICENSE.

package machine

import (
	"strings"
)

// The stack type is a machine's continuation: the frames waiting for a
// value, top first. Stacks are never modified. Pushing a frame creates a
// new stack that shares the rest with the original.
type stack struct {
	*stack
	frame frame
}

//nolint:gochecknoglobals
var (
	done = &stack{}
)

// Len returns the number of frames on the stack k.
func (k *stack) Len() int {
	n := 0
	for ; k != done; k = k.stack {
		n++
	}

	return n
}

// String lists the frames on k, top first. Useful for debugging.
func (k *stack) String() string {
	if k == done {
		return "done"
	}

	var names []string
	for ; k != done; k = k.stack {
		names = append(names, k.frame.String())
	}

	return strings.Join(names, " ")
}

func (k *stack) pop() (frame, *stack) {
	return k.frame, k.stack
}

func (k *stack) push(f frame) *stack {
	return &stack{k, f}
}

func init() { //nolint:gochecknoinits
	done.stack = done
}
