package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hyperledger/fabric-gateway/pkg/client"
	"github.com/hyperledger/fabric-gateway/pkg/identity"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// GatewayConfig names the channel and chaincode and bounds every network
// round-trip.
type GatewayConfig struct {
	Channel             string
	Chaincode           string
	EndorseTimeout      time.Duration
	SubmitTimeout       time.Duration
	EvaluateTimeout     time.Duration
	CommitStatusTimeout time.Duration
}

// Gateway is the Fabric-backed ledger client. It holds one long-lived
// authenticated gateway session over an injected gRPC connection; identity
// enrollment and connection setup belong to the caller.
type Gateway struct {
	gateway  *client.Gateway
	contract *client.Contract
	logger   *zap.Logger
}

// NewGateway connects a gateway session on conn as the given identity.
func NewGateway(conn grpc.ClientConnInterface, id identity.Identity, sign identity.Sign, cfg GatewayConfig, logger *zap.Logger) (*Gateway, error) {
	if cfg.Channel == "" || cfg.Chaincode == "" {
		return nil, errors.New("channel and chaincode names are required")
	}

	opts := []client.ConnectOption{
		client.WithClientConnection(conn),
		client.WithSign(sign),
	}
	if cfg.EndorseTimeout > 0 {
		opts = append(opts, client.WithEndorseTimeout(cfg.EndorseTimeout))
	}
	if cfg.SubmitTimeout > 0 {
		opts = append(opts, client.WithSubmitTimeout(cfg.SubmitTimeout))
	}
	if cfg.EvaluateTimeout > 0 {
		opts = append(opts, client.WithEvaluateTimeout(cfg.EvaluateTimeout))
	}
	if cfg.CommitStatusTimeout > 0 {
		opts = append(opts, client.WithCommitStatusTimeout(cfg.CommitStatusTimeout))
	}

	gw, err := client.Connect(id, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect gateway: %w", err)
	}

	return &Gateway{
		gateway:  gw,
		contract: gw.GetNetwork(cfg.Channel).GetContract(cfg.Chaincode),
		logger:   logger,
	}, nil
}

// Submit endorses and submits a transaction, waiting for the commit status so
// the returned transaction id refers to a durably committed write.
func (g *Gateway) Submit(ctx context.Context, fn string, args ...string) (*SubmitResult, error) {
	proposal, err := g.contract.NewProposal(fn, client.WithArguments(args...))
	if err != nil {
		return nil, fmt.Errorf("build proposal for %s: %w", fn, err)
	}

	txn, err := proposal.EndorseWithContext(ctx)
	if err != nil {
		return nil, g.classifySubmitError(fn, err)
	}

	commit, err := txn.SubmitWithContext(ctx)
	if err != nil {
		return nil, g.classifySubmitError(fn, err)
	}

	commitStatus, err := commit.StatusWithContext(ctx)
	if err != nil {
		return nil, g.classifySubmitError(fn, err)
	}
	if !commitStatus.Successful {
		return nil, fmt.Errorf("transaction %s failed with validation code %d", commitStatus.TransactionID, int32(commitStatus.Code))
	}

	g.logger.Debug("transaction committed",
		zap.String("fn", fn),
		zap.String("tx_id", commitStatus.TransactionID))

	return &SubmitResult{
		Payload:       txn.Result(),
		TransactionID: commitStatus.TransactionID,
	}, nil
}

// Evaluate runs a read-only query against the gateway peer.
func (g *Gateway) Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error) {
	payload, err := g.contract.EvaluateWithContext(ctx, fn, client.WithArguments(args...))
	if err != nil {
		return nil, classifyGRPCError(fn, err)
	}
	return payload, nil
}

// Close tears down the gateway session. The gRPC connection itself belongs to
// the caller that dialed it.
func (g *Gateway) Close() error {
	return g.gateway.Close()
}

// classifySubmitError separates contract rejections, which carry the state
// machine's diagnostic verbatim, from transport failures, which callers may
// retry.
func (g *Gateway) classifySubmitError(fn string, err error) error {
	var endorseErr *client.EndorseError
	if errors.As(err, &endorseErr) {
		// The endorsing peer ran the contract and it refused the transition.
		return model.ClassifyContractError(err.Error())
	}

	var submitErr *client.SubmitError
	var statusErr *client.CommitStatusError
	if errors.As(err, &submitErr) || errors.As(err, &statusErr) {
		return &model.LedgerUnavailableError{Op: fn, Err: err}
	}

	return classifyGRPCError(fn, err)
}

func classifyGRPCError(fn string, err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled, codes.Unauthenticated:
		return &model.LedgerUnavailableError{Op: fn, Err: err}
	default:
		return model.ClassifyContractError(status.Convert(err).Message())
	}
}
