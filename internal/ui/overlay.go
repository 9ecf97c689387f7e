package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal view layered over the current screen.
type Overlay struct {
	View View
}

// submitter is implemented by modals that embed ModalLifecycle. The stack
// uses it to refuse dismissal while a submission is in flight.
type submitter interface {
	Submitting() bool
}

// OverlayStack manages layered modals; the topmost receives input first.
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay. It refuses to pop a modal whose
// submission is still in flight.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	if sub, ok := top.View.(submitter); ok && sub.Submitting() {
		return Overlay{}, false
	}
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// ForcePop removes the top overlay regardless of its submit state. Used when
// a submission has settled and the modal is being closed by its result.
func (s *OverlayStack) ForcePop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View
// with the result. Returns the cmd from the overlay's Update.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
