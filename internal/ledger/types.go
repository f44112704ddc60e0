// Package ledger provides clients for the authoritative ledger network. The
// network itself (consensus, block production, gossip) is a black box that
// exposes committing submits and non-committing evaluates.
package ledger

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// SubmitResult is the outcome of a committed ledger transaction.
type SubmitResult struct {
	// Payload is the contract's JSON result.
	Payload []byte
	// TransactionID is the ledger-assigned transaction identifier.
	TransactionID string
}

// Client is a long-lived handle to the ledger network. Implementations are
// injected, never global, so they can be mocked in tests.
type Client interface {
	// Submit executes a contract function as a committing transaction and
	// waits for the commit outcome.
	Submit(ctx context.Context, fn string, args ...string) (*SubmitResult, error)
	// Evaluate executes a contract query without committing anything.
	Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error)
	// Close releases the underlying connection.
	Close() error
}
