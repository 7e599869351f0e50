package models

import (
	"time"
)

// Swap statuses. 'rejected' and 'completed' are terminal.
const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusRejected  = "rejected"
	SwapStatusCompleted = "completed"
)

// swapTransitions enumerates every legal status edge. Anything not
// listed here (including completed -> completed) is rejected.
var swapTransitions = map[string][]string{
	SwapStatusPending:  {SwapStatusAccepted, SwapStatusRejected},
	SwapStatusAccepted: {SwapStatusCompleted},
}

// CanTransitionSwap reports whether a swap may move from one status
// to another.
func CanTransitionSwap(from, to string) bool {
	for _, next := range swapTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidSwapStatus reports whether s is one of the known swap statuses.
func ValidSwapStatus(s string) bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted:
		return true
	}
	return false
}

// Swap is the model for the 'swaps' table. It represents a bidirectional
// trade proposal between two users' items.
type Swap struct {
	ID              string  `json:"id" db:"id"`
	RequesterID     string  `json:"requesterId" db:"requester_id"`
	OwnerID         string  `json:"ownerId" db:"owner_id"`
	RequesterItemID string  `json:"requesterItemId" db:"requester_item_id"`
	OwnerItemID     string  `json:"ownerItemId" db:"owner_item_id"`
	PointsDiff      int     `json:"pointsDifference" db:"points_difference"`
	Status          string  `json:"status" db:"status"`
	Message         *string `json:"message,omitempty" db:"message"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Participant reports whether the given user is one of the two sides
// of the swap.
func (s *Swap) Participant(userID string) bool {
	return s.RequesterID == userID || s.OwnerID == userID
}
