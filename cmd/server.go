package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"paybridge/internal/config"
	"paybridge/internal/core"
	"paybridge/internal/db"
	"paybridge/internal/http/handler"
	"paybridge/internal/http/handler/middleware"
	"paybridge/internal/http/payload"
	"paybridge/internal/http/server"
	"paybridge/internal/node"
	"paybridge/internal/repository"
	"paybridge/internal/scanner"
	"paybridge/internal/wallet"
	"paybridge/pkg/jwt"
	"paybridge/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("paybridge", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewBridgeRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	nodeClient := node.NewClient(logger, config.NodeURL, config.NodeAPIKey)

	// the node wallet must control the configured merchant address;
	// serving with a mismatched wallet would silently misroute funds
	if err := validateWallet(context.Background(), logger, nodeClient, config.Address); err != nil {
		logger.Errorw("wallet validation failed", "error", err)
		return err
	}

	walletHandle := core.WalletHandle{
		Address: config.Address,
		AssetID: config.AssetID,
		Fee:     config.TxFee,
	}

	bridge := core.NewBridge(logger, repo, nodeClient, walletHandle)

	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// handler
	bridgeHlr := handler.NewBridgeHandler(
		logger,
		payload.DecodeValidator{},
		bridge,
		jwtService,
		handler.APIKey{ID: config.APIKeyID, Secret: config.APIKeySecret})

	// middleware
	mux := http.NewServeMux()
	authEnabled := config.JWTSecret != ""
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewAuthMiddleware(logger, jwtService, authEnabled, "/api/authenticate").Authorize(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, bridgeHlr.HandleAuthenticate)
	mux.HandleFunc(handler.Balance, bridgeHlr.HandleBalance)
	mux.HandleFunc(handler.ListTransactions, bridgeHlr.HandleListTransactions)
	mux.HandleFunc(handler.CreateTransaction, bridgeHlr.HandleCreateTransaction)
	mux.HandleFunc(handler.BroadcastTransaction, bridgeHlr.HandleBroadcastTransaction)

	blockScanner := scanner.NewScanner(logger, nodeClient, repo, config.Address, config.StartBlock)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(logger, srv, blockScanner)
}

// run serves HTTP and scans the chain concurrently until a shutdown signal
// arrives, then stops the scanner (final cursor checkpoint included) and
// drains in-flight requests.
func run(logger *zap.SugaredLogger, server *server.HTTPServer, blockScanner *scanner.Scanner) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	scanCtx, stopScanner := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := blockScanner.Run(scanCtx); err != nil {
			logger.Errorw("scanner stopped with error", "error", err)
		}
	}()

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	stopScanner()
	wg.Wait()

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}

// validateWallet is the startup precondition: the configured address must be
// controlled by the node and the node wallet seed must derive it.
func validateWallet(ctx context.Context, logger *zap.SugaredLogger, nodeClient *node.Client, address string) error {
	addresses, err := nodeClient.Addresses(ctx)
	if err != nil {
		return fmt.Errorf("node addresses: %w", err)
	}

	controlled := false
	for _, addr := range addresses {
		if addr == address {
			controlled = true
			break
		}
	}
	if !controlled {
		return fmt.Errorf("node wallet does not control %s", address)
	}

	seed, err := nodeClient.WalletSeed(ctx)
	if err != nil {
		return fmt.Errorf("wallet seed: %w", err)
	}

	scheme, err := wallet.SchemeOf(address)
	if err != nil {
		return fmt.Errorf("address scheme: %w", err)
	}
	derived, err := wallet.AddressFromSeed(seed, scheme)
	if err != nil {
		return fmt.Errorf("derive address from seed: %w", err)
	}
	if derived != address {
		return fmt.Errorf("wallet seed derives %s, configured address is %s", derived, address)
	}

	logger.Infow("wallet validated", "address", address)
	return nil
}
