// Package model defines domain models for the filter lifecycle.
package model

import "time"

// State describes the lifecycle state of a filter unit.
type State string

const (
	// StateRegistered marks a unit created as part of a batch registration.
	StateRegistered State = "REGISTERED"
	// StateShipped marks a unit shipped towards a destination.
	StateShipped State = "SHIPPED"
	// StateReceived marks a unit received at a warehouse.
	StateReceived State = "RECEIVED"
	// StateVerified marks a unit verified as delivered at a site.
	StateVerified State = "VERIFIED"
	// StateReplaced marks a unit swapped out by a replacement. Terminal.
	StateReplaced State = "REPLACED"
	// StateLostOrDamaged marks a unit flagged as lost or damaged. Terminal.
	StateLostOrDamaged State = "LOST_OR_DAMAGED"
)

// KnownState reports whether s is one of the lifecycle states.
func KnownState(s State) bool {
	switch s {
	case StateRegistered, StateShipped, StateReceived, StateVerified, StateReplaced, StateLostOrDamaged:
		return true
	default:
		return false
	}
}

// Terminal reports whether a unit in this state permits no further transitions
// other than being flagged.
func (s State) Terminal() bool {
	return s == StateReplaced || s == StateLostOrDamaged
}

// FlagReason is the reason a unit was flagged out of circulation.
type FlagReason string

const (
	ReasonLost    FlagReason = "LOST"
	ReasonDamaged FlagReason = "DAMAGED"
)

// KnownFlagReason reports whether r is a valid flag reason.
func KnownFlagReason(r FlagReason) bool {
	return r == ReasonLost || r == ReasonDamaged
}

// EventType names the transition an event records.
type EventType string

const (
	EventRegistered EventType = "REGISTERED"
	EventShipped    EventType = "SHIPPED"
	EventReceived   EventType = "RECEIVED"
	EventVerified   EventType = "VERIFIED"
	EventReplaced   EventType = "REPLACED"
	EventFlagged    EventType = "FLAGGED"
)

// StateForEvent returns the state a unit holds after an event of the given
// type. FLAGGED always maps to LOST_OR_DAMAGED regardless of the flag reason.
func StateForEvent(t EventType) (State, bool) {
	switch t {
	case EventRegistered:
		return StateRegistered, true
	case EventShipped:
		return StateShipped, true
	case EventReceived:
		return StateReceived, true
	case EventVerified:
		return StateVerified, true
	case EventReplaced:
		return StateReplaced, true
	case EventFlagged:
		return StateLostOrDamaged, true
	default:
		return "", false
	}
}

// Event is one immutable fact appended to a unit's history on a transition.
// Timestamps are seconds, assigned at ledger execution time.
type Event struct {
	EventType    EventType  `json:"eventType"`
	Timestamp    int64      `json:"timestamp"`
	Org          string     `json:"org"`
	BatchID      string     `json:"batchId,omitempty"`
	Destination  string     `json:"destination,omitempty"`
	WarehouseID  string     `json:"warehouseId,omitempty"`
	SiteID       string     `json:"siteId,omitempty"`
	VerifierID   string     `json:"verifierId,omitempty"`
	Reason       FlagReason `json:"reason,omitempty"`
	ReplacedBy   string     `json:"replacedBy,omitempty"`
	ReplacedUnit string     `json:"replacedUnit,omitempty"`
}

// Unit is the ledger's record of one physical filter unit. BatchID is set at
// registration and never changes; context attributes are set by specific
// transitions and never cleared; History only grows.
type Unit struct {
	UnitID       string     `json:"unitId"`
	BatchID      string     `json:"batchId"`
	State        State      `json:"state"`
	Org          string     `json:"org"`
	Destination  string     `json:"destination,omitempty"`
	WarehouseID  string     `json:"warehouseId,omitempty"`
	SiteID       string     `json:"siteId,omitempty"`
	VerifierID   string     `json:"verifierId,omitempty"`
	ReplacedBy   string     `json:"replacedBy,omitempty"`
	ReplacedUnit string     `json:"replacedUnit,omitempty"`
	FlagReason   FlagReason `json:"flagReason,omitempty"`
	CreatedAt    int64      `json:"createdAt"`
	ShippedAt    int64      `json:"shippedAt,omitempty"`
	ReceivedAt   int64      `json:"receivedAt,omitempty"`
	VerifiedAt   int64      `json:"verifiedAt,omitempty"`
	ReplacedAt   int64      `json:"replacedAt,omitempty"`
	FlaggedAt    int64      `json:"flaggedAt,omitempty"`
	History      []Event    `json:"history"`
}

// LastUpdated returns the timestamp of the most recent event, falling back to
// the registration time for an empty history.
func (u *Unit) LastUpdated() int64 {
	if len(u.History) == 0 {
		return u.CreatedAt
	}
	return u.History[len(u.History)-1].Timestamp
}

// Snapshot is the full current view of a unit returned by a ledger read.
type Snapshot struct {
	UnitID       string     `json:"unitId"`
	BatchID      string     `json:"batchId"`
	State        State      `json:"state"`
	Destination  string     `json:"destination,omitempty"`
	WarehouseID  string     `json:"warehouseId,omitempty"`
	SiteID       string     `json:"siteId,omitempty"`
	VerifierID   string     `json:"verifierId,omitempty"`
	ReplacedBy   string     `json:"replacedBy,omitempty"`
	ReplacedUnit string     `json:"replacedUnit,omitempty"`
	FlagReason   FlagReason `json:"flagReason,omitempty"`
	History      []Event    `json:"history"`
	CreatedAt    int64      `json:"createdAt"`
	LastUpdated  int64      `json:"lastUpdated"`
}

// EventStatusCommitted marks an event row projected from a committed ledger
// transaction.
const EventStatusCommitted = "COMMITTED"

// CachedUnit is the Local Cache Store's current-state projection of a unit.
// One row per unit, fully replaced on every update.
type CachedUnit struct {
	UnitID        string    `json:"unitId"`
	State         State     `json:"state"`
	BatchID       string    `json:"batchId"`
	SiteID        string    `json:"siteId,omitempty"`
	WarehouseID   string    `json:"warehouseId,omitempty"`
	VerifierID    string    `json:"verifierId,omitempty"`
	Destination   string    `json:"destination,omitempty"`
	LastTs        time.Time `json:"lastTs"`
	LastEventType EventType `json:"lastEventType"`
}

// Equal reports whether two cache rows hold the same projection. Timestamps
// are compared as instants, so the same moment in different locations or with
// a wall-clock reading still matches.
func (u CachedUnit) Equal(other CachedUnit) bool {
	return u.UnitID == other.UnitID &&
		u.State == other.State &&
		u.BatchID == other.BatchID &&
		u.SiteID == other.SiteID &&
		u.WarehouseID == other.WarehouseID &&
		u.VerifierID == other.VerifierID &&
		u.Destination == other.Destination &&
		u.LastTs.Equal(other.LastTs) &&
		u.LastEventType == other.LastEventType
}

// CachedEvent is one append-only row of the cache's event log, keyed by the
// ledger transaction id and the affected unit.
type CachedEvent struct {
	TxID      string    `json:"txId"`
	UnitID    string    `json:"unitId"`
	EventType EventType `json:"eventType"`
	Ts        time.Time `json:"ts"`
	Org       string    `json:"org"`
	Status    string    `json:"status"`
	Metadata  string    `json:"metadata,omitempty"`
}

// Stats aggregates cache-wide counts for the dashboard.
type Stats struct {
	TotalUnits            uint64               `json:"totalUnits"`
	TotalEvents           uint64               `json:"totalEvents"`
	StateCounts           map[State]uint64     `json:"stateCounts"`
	EventTypeCounts       map[EventType]uint64 `json:"eventTypeCounts"`
	VerifiedCount         uint64               `json:"verifiedCount"`
	ReplacedCount         uint64               `json:"replacedCount"`
	LostDamagedCount      uint64               `json:"lostDamagedCount"`
	VerifiedDeliveries    uint64               `json:"verifiedDeliveries"`
	ReplacementCompliance float64              `json:"replacementCompliance"`
}
