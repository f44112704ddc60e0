package model

// Transaction result payloads returned by the ledger contract. Field names
// follow the chaincode's JSON wire format.

type RegisterResult struct {
	Success   bool   `json:"success"`
	BatchID   string `json:"batchId"`
	UnitCount int    `json:"unitCount"`
	Timestamp int64  `json:"timestamp"`
	TxID      string `json:"txId,omitempty"`
}

type ShipResult struct {
	Success     bool   `json:"success"`
	BatchID     string `json:"batchId"`
	Destination string `json:"destination"`
	UnitCount   int    `json:"unitCount"`
	Timestamp   int64  `json:"timestamp"`
	TxID        string `json:"txId,omitempty"`
}

type ReceiveResult struct {
	Success     bool   `json:"success"`
	UnitID      string `json:"unitId"`
	WarehouseID string `json:"warehouseId"`
	Timestamp   int64  `json:"timestamp"`
	TxID        string `json:"txId,omitempty"`
}

type VerifyResult struct {
	Success    bool   `json:"success"`
	UnitID     string `json:"unitId"`
	SiteID     string `json:"siteId"`
	VerifierID string `json:"verifierId"`
	Timestamp  int64  `json:"timestamp"`
	TxID       string `json:"txId,omitempty"`
}

type ReplaceResult struct {
	Success   bool   `json:"success"`
	OldUnitID string `json:"oldUnitId"`
	NewUnitID string `json:"newUnitId"`
	SiteID    string `json:"siteId"`
	Timestamp int64  `json:"timestamp"`
	TxID      string `json:"txId,omitempty"`
}

type FlagResult struct {
	Success   bool       `json:"success"`
	UnitID    string     `json:"unitId"`
	Reason    FlagReason `json:"reason"`
	Timestamp int64      `json:"timestamp"`
	TxID      string     `json:"txId,omitempty"`
}

// ReceiveFailure carries the error for one unit that could not be received.
type ReceiveFailure struct {
	UnitID string `json:"unitId"`
	Error  string `json:"error"`
}

// ReceiveBatchResult reports a per-unit warehouse receive fan-out. Partial
// success is allowed; failures never roll back the units that succeeded.
type ReceiveBatchResult struct {
	Received []ReceiveResult  `json:"received"`
	Failed   []ReceiveFailure `json:"failed"`
}
