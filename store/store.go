package store

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the backing storage cannot be reached or
// read. Absence of a value is not an error.
var ErrUnavailable = errors.New("session store unavailable")

// Slot identifies one of the three persisted session fields. The string
// value is the storage key and is an external contract: existing
// installations hold state under these exact names.
type Slot string

const (
	// SlotCredential holds the raw bearer credential.
	SlotCredential Slot = "token"
	// SlotIdentity holds the derived identity (email or subject).
	SlotIdentity Slot = "userEmail"
	// SlotRole holds the derived role string.
	SlotRole Slot = "userRole"
)

// Slots returns every slot in persistence order.
func Slots() []Slot {
	return []Slot{SlotCredential, SlotIdentity, SlotRole}
}

// Store is the persisted session contract. Implementations must be safe for
// concurrent use.
type Store interface {
	// Read returns the stored value for slot, or "" when absent.
	Read(ctx context.Context, slot Slot) (string, error)
	// Write stores value under slot. An empty value deletes the key.
	Write(ctx context.Context, slot Slot, value string) error
	// Clear removes all three keys. Observers never see a partial clear.
	Clear(ctx context.Context) error
}
