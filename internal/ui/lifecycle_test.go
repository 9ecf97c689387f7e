package ui

import "testing"

func TestModalLifecycleSequences(t *testing.T) {
	tests := []struct {
		name           string
		steps          func(l *ModalLifecycle)
		wantOpen       bool
		wantSubmitting bool
	}{
		{
			name:     "open",
			steps:    func(l *ModalLifecycle) { l.Open() },
			wantOpen: true,
		},
		{
			name:     "open twice stays open",
			steps:    func(l *ModalLifecycle) { l.Open(); l.Open() },
			wantOpen: true,
		},
		{
			name:     "open then close",
			steps:    func(l *ModalLifecycle) { l.Open(); l.Close() },
			wantOpen: false,
		},
		{
			name:     "rapid open close open lands open",
			steps:    func(l *ModalLifecycle) { l.Open(); l.Close(); l.Open() },
			wantOpen: true,
		},
		{
			name:           "close during submit is refused",
			steps:          func(l *ModalLifecycle) { l.Open(); l.SubmitStart(); l.Close() },
			wantOpen:       true,
			wantSubmitting: true,
		},
		{
			name:  "submit end closes whatever the outcome",
			steps: func(l *ModalLifecycle) { l.Open(); l.SubmitStart(); l.SubmitEnd() },
		},
		{
			name:  "refused close then submit end still closes",
			steps: func(l *ModalLifecycle) { l.Open(); l.SubmitStart(); l.Close(); l.SubmitEnd() },
		},
		{
			name:     "submit start on closed modal is refused",
			steps:    func(l *ModalLifecycle) { l.SubmitStart() },
			wantOpen: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l ModalLifecycle
			tt.steps(&l)
			if l.IsOpen() != tt.wantOpen {
				t.Errorf("IsOpen() = %v, want %v", l.IsOpen(), tt.wantOpen)
			}
			if l.Submitting() != tt.wantSubmitting {
				t.Errorf("Submitting() = %v, want %v", l.Submitting(), tt.wantSubmitting)
			}
		})
	}
}

func TestModalLifecycleDoubleSubmit(t *testing.T) {
	var l ModalLifecycle
	l.Open()
	if !l.SubmitStart() {
		t.Fatal("first SubmitStart should succeed")
	}
	if l.SubmitStart() {
		t.Error("second SubmitStart should be refused while in flight")
	}
	l.SubmitEnd()
	if l.IsOpen() || l.Submitting() {
		t.Errorf("after SubmitEnd: open=%v submitting=%v, want both false", l.IsOpen(), l.Submitting())
	}
	// A settled modal cannot restart a submission without reopening.
	if l.SubmitStart() {
		t.Error("SubmitStart after settle should be refused")
	}
}
