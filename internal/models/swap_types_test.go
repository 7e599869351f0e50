package models

import "testing"

func TestCanTransitionSwap(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{SwapStatusPending, SwapStatusAccepted, true},
		{SwapStatusPending, SwapStatusRejected, true},
		{SwapStatusAccepted, SwapStatusCompleted, true},
		{SwapStatusPending, SwapStatusCompleted, false},
		{SwapStatusAccepted, SwapStatusRejected, false},
		{SwapStatusAccepted, SwapStatusPending, false},
		{SwapStatusRejected, SwapStatusAccepted, false},
		{SwapStatusCompleted, SwapStatusCompleted, false},
		{SwapStatusCompleted, SwapStatusAccepted, false},
	}

	for _, tt := range tests {
		if got := CanTransitionSwap(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransitionSwap(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidSwapStatus(t *testing.T) {
	for _, s := range []string{SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted} {
		if !ValidSwapStatus(s) {
			t.Errorf("expected %q to be a valid status", s)
		}
	}
	for _, s := range []string{"", "cancelled", "Pending"} {
		if ValidSwapStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestSwapParticipant(t *testing.T) {
	swap := &Swap{RequesterID: "alice", OwnerID: "bob"}

	if !swap.Participant("alice") || !swap.Participant("bob") {
		t.Error("expected both sides to count as participants")
	}
	if swap.Participant("carol") {
		t.Error("expected a third party not to be a participant")
	}
}
