package ui

// ModalLifecycle tracks a modal's open/submitting state. Every modal embeds
// one so that the close rules are the same everywhere:
//
//   - Open is a no-op while already open.
//   - Close is refused while a submission is in flight; the modal stays
//     visible until SubmitEnd settles it.
//   - SubmitStart is refused unless the modal is open and idle, so a
//     double-press of confirm cannot fire the action twice.
//   - SubmitEnd clears the in-flight flag and closes the modal, whatever
//     the submission's outcome was.
type ModalLifecycle struct {
	open       bool
	submitting bool
}

// Open marks the modal visible. Returns false if it was already open.
func (l *ModalLifecycle) Open() bool {
	if l.open {
		return false
	}
	l.open = true
	return true
}

// Close marks the modal hidden. Returns false if the modal is not open or a
// submission is still in flight.
func (l *ModalLifecycle) Close() bool {
	if !l.open || l.submitting {
		return false
	}
	l.open = false
	return true
}

// SubmitStart marks a submission in flight. Returns false if the modal is
// closed or already submitting.
func (l *ModalLifecycle) SubmitStart() bool {
	if !l.open || l.submitting {
		return false
	}
	l.submitting = true
	return true
}

// SubmitEnd settles the submission and closes the modal.
func (l *ModalLifecycle) SubmitEnd() {
	l.submitting = false
	l.open = false
}

// IsOpen reports whether the modal is visible.
func (l *ModalLifecycle) IsOpen() bool { return l.open }

// Submitting reports whether a submission is in flight. Views use this to
// disable their controls.
func (l *ModalLifecycle) Submitting() bool { return l.submitting }
