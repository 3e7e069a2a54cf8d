// Package buffer provides a stack of saved expression text for calculator
// shells.
package buffer

// Stack is a LIFO stack of saved text. The zero value is an empty, unbounded
// stack. A Stack is not safe to use concurrently.
type Stack struct {
	items []string
	depth int
}

// New creates a stack holding at most depth entries. If depth is not
// positive, the stack is unbounded.
func New(depth int) *Stack {
	if depth < 0 {
		depth = 0
	}
	return &Stack{depth: depth}
}

// Push saves text on top of the stack. If the stack is full, the oldest entry
// is dropped.
func (s *Stack) Push(text string) {
	if s.depth > 0 && len(s.items) >= s.depth {
		n := copy(s.items, s.items[len(s.items)-s.depth+1:])
		s.items = s.items[:n]
	}
	s.items = append(s.items, text)
}

// Pop removes and returns the most recently saved text. If the stack is
// empty, the result is "", false.
func (s *Stack) Pop() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	text := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return text, true
}

// Peek returns the most recently saved text without removing it.
func (s *Stack) Peek() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	return s.items[len(s.items)-1], true
}

// Clear removes all entries.
func (s *Stack) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Len returns the number of saved entries.
func (s *Stack) Len() int {
	return len(s.items)
}

// Depth returns the maximum number of entries, or 0 if unbounded.
func (s *Stack) Depth() int {
	return s.depth
}
