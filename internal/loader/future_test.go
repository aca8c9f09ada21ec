package loader

import (
	stderrors "errors"
	"testing"

	"github.com/zhubert/inkwell/internal/document"
	"github.com/zhubert/inkwell/internal/errors"
)

func describe(f *Future) string {
	return Match(f,
		func() string { return "pending" },
		func(s *document.Session) string { return "fulfilled:" + s.Body() },
		func(err error) string { return "rejected:" + err.Error() },
	)
}

func TestFuture_StartsPending(t *testing.T) {
	f := NewFuture()

	if f.State() != StatePending {
		t.Errorf("State() = %v, want pending", f.State())
	}
	if f.Settled() {
		t.Error("new future should not be settled")
	}
	if got := describe(f); got != "pending" {
		t.Errorf("Match() = %q, want pending", got)
	}
}

func TestFuture_Resolve(t *testing.T) {
	f := NewFuture()
	sess, _ := document.NewSession("hello")

	if err := f.Resolve(sess); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if f.State() != StateFulfilled {
		t.Errorf("State() = %v, want fulfilled", f.State())
	}
	if got := describe(f); got != "fulfilled:hello" {
		t.Errorf("Match() = %q", got)
	}
}

func TestFuture_Reject(t *testing.T) {
	f := NewFuture()

	if err := f.Reject(stderrors.New("boom")); err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if f.State() != StateRejected {
		t.Errorf("State() = %v, want rejected", f.State())
	}
	if got := describe(f); got != "rejected:boom" {
		t.Errorf("Match() = %q", got)
	}
}

func TestFuture_SettlesOnce(t *testing.T) {
	sess, _ := document.NewSession("first")

	tests := []struct {
		name   string
		settle func(*Future) error
		again  func(*Future) error
		want   State
	}{
		{
			name:   "resolve then reject",
			settle: func(f *Future) error { return f.Resolve(sess) },
			again:  func(f *Future) error { return f.Reject(stderrors.New("late")) },
			want:   StateFulfilled,
		},
		{
			name:   "reject then resolve",
			settle: func(f *Future) error { return f.Reject(stderrors.New("early")) },
			again:  func(f *Future) error { return f.Resolve(sess) },
			want:   StateRejected,
		},
		{
			name:   "resolve twice",
			settle: func(f *Future) error { return f.Resolve(sess) },
			again:  func(f *Future) error { return f.Resolve(nil) },
			want:   StateFulfilled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFuture()
			if err := tt.settle(f); err != nil {
				t.Fatalf("first settlement error = %v", err)
			}
			before := describe(f)

			err := tt.again(f)
			if !errors.Is(err, errors.KindState) {
				t.Errorf("second settlement error = %v, want state error", err)
			}
			if f.State() != tt.want {
				t.Errorf("State() = %v, want %v", f.State(), tt.want)
			}
			if describe(f) != before {
				t.Errorf("second settlement changed the outcome: %q -> %q", before, describe(f))
			}
		})
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StatePending, "pending"},
		{StateFulfilled, "fulfilled"},
		{StateRejected, "rejected"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
