package main

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/hyperledger/fabric-gateway/pkg/identity"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/clearsourceworks/filtertrace-backend/internal/clock"
	"github.com/clearsourceworks/filtertrace-backend/internal/ledger"
	"github.com/clearsourceworks/filtertrace-backend/internal/metrics"
	"github.com/clearsourceworks/filtertrace-backend/internal/repository/clickhouse"
	"github.com/clearsourceworks/filtertrace-backend/internal/service"
	"github.com/clearsourceworks/filtertrace-backend/internal/transport"
)

var config struct {
	Addr          string `long:"addr" env:"API_GATEWAY_ADDR" description:"http listen addr" default:":8000"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`

	LedgerBackend string `long:"ledger-backend" env:"API_GATEWAY_LEDGER_BACKEND" description:"ledger backend" choice:"fabric" choice:"memory" default:"fabric"`
	MSPID         string `long:"msp-id" env:"API_GATEWAY_MSP_ID" description:"organization MSP id" default:"Org1MSP"`

	PeerEndpoint string `long:"peer-endpoint" env:"API_GATEWAY_PEER_ENDPOINT" description:"fabric gateway peer endpoint" default:"localhost:7051"`
	GatewayPeer  string `long:"gateway-peer" env:"API_GATEWAY_PEER_NAME" description:"gateway peer tls server name" default:"peer0.org1.example.com"`
	TLSCertPath  string `long:"tls-cert" env:"API_GATEWAY_TLS_CERT" description:"path to peer tls ca certificate"`
	CertPath     string `long:"cert" env:"API_GATEWAY_CERT" description:"path to client identity certificate"`
	KeyPath      string `long:"key" env:"API_GATEWAY_KEY" description:"path to client private key"`
	Channel      string `long:"channel" env:"API_GATEWAY_CHANNEL" description:"channel name" default:"filtertrace"`
	Chaincode    string `long:"chaincode" env:"API_GATEWAY_CHAINCODE" description:"chaincode name" default:"filterunits"`

	SubmitTimeout  time.Duration `long:"submit-timeout" env:"API_GATEWAY_SUBMIT_TIMEOUT" description:"ledger submit timeout" default:"30s"`
	ReceiveWorkers int           `long:"receive-workers" env:"API_GATEWAY_RECEIVE_WORKERS" description:"warehouse receive fan-out workers" default:"4"`

	CacheReadyAttempts int           `long:"cache-ready-attempts" env:"API_GATEWAY_CACHE_READY_ATTEMPTS" description:"ClickHouse readiness probe attempts" default:"30"`
	CacheReadyInterval time.Duration `long:"cache-ready-interval" env:"API_GATEWAY_CACHE_READY_INTERVAL" description:"ClickHouse readiness probe interval" default:"2s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	if err := run(ctx, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Error("Failed to close repository", zap.Error(closeErr))
		}
	}()

	// The cache is a replica; wait for it rather than serving reads that
	// would all fall through to read-repair.
	if err := clock.WaitUntil(ctx, config.CacheReadyAttempts, config.CacheReadyInterval, repo.Ping); err != nil {
		return fmt.Errorf("clickhouse not ready: %w", err)
	}

	ledgerClient, cleanup, err := newLedgerClient(logger)
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}
	defer cleanup()

	projMetrics := metrics.NewProjector()

	sink := service.NewBatchedEventSink(repo, projMetrics, service.DefaultEventSinkConfig(), logger)
	sink.Start(ctx)
	defer sink.Stop()

	projector := service.NewProjector(repo, sink, logger)
	lifecycle := service.NewLifecycle(
		ledger.NewObservedClient(ledgerClient, metrics.NewLedgerClient()),
		repo,
		projector,
		projMetrics,
		config.MSPID,
		config.ReceiveWorkers,
		logger,
	)

	mux := http.NewServeMux()
	mux.Handle("/", transport.NewHandler(lifecycle, logger).Router())
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newLedgerClient(logger *zap.Logger) (ledger.Client, func(), error) {
	if config.LedgerBackend == "memory" {
		logger.Warn("Using in-memory ledger backend; writes are not durable")
		mem := ledger.NewMemoryLedger(config.MSPID)
		return mem, func() {}, nil
	}

	conn, err := dialPeer(logger)
	if err != nil {
		return nil, nil, err
	}

	id, sign, err := loadIdentity()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	gw, err := ledger.NewGateway(conn, id, sign, ledger.GatewayConfig{
		Channel:       config.Channel,
		Chaincode:     config.Chaincode,
		SubmitTimeout: config.SubmitTimeout,
	}, logger)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := gw.Close(); err != nil {
			logger.Error("Failed to close gateway", zap.Error(err))
		}
		if err := conn.Close(); err != nil {
			logger.Error("Failed to close peer connection", zap.Error(err))
		}
	}
	return gw, cleanup, nil
}

func dialPeer(logger *zap.Logger) (*grpc.ClientConn, error) {
	tlsCert, err := os.ReadFile(config.TLSCertPath)
	if err != nil {
		return nil, fmt.Errorf("read peer tls certificate: %w", err)
	}
	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(tlsCert) {
		return nil, errors.New("peer tls certificate is not valid PEM")
	}

	chain := []grpc.UnaryClientInterceptor{
		grpcPrometheus.UnaryClientInterceptor,
		grpcZap.UnaryClientInterceptor(logger),
	}
	return grpc.NewClient(config.PeerEndpoint,
		grpc.WithTransportCredentials(credentials.NewClientTLSFromCert(certPool, config.GatewayPeer)),
		grpc.WithUnaryInterceptor(grpcMiddleware.ChainUnaryClient(chain...)),
	)
}

func loadIdentity() (identity.Identity, identity.Sign, error) {
	certPEM, err := os.ReadFile(config.CertPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read identity certificate: %w", err)
	}
	cert, err := identity.CertificateFromPEM(certPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("parse identity certificate: %w", err)
	}
	id, err := identity.NewX509Identity(config.MSPID, cert)
	if err != nil {
		return nil, nil, fmt.Errorf("build identity: %w", err)
	}

	keyPEM, err := os.ReadFile(config.KeyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read private key: %w", err)
	}
	key, err := identity.PrivateKeyFromPEM(keyPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("parse private key: %w", err)
	}
	sign, err := identity.NewPrivateKeySign(key)
	if err != nil {
		return nil, nil, fmt.Errorf("build signer: %w", err)
	}

	return id, sign, nil
}
