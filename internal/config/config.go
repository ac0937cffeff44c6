package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	nodeURLEnvKey      = "NODE_URL"
	nodeAPIKeyEnvKey   = "NODE_API_KEY"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	addressEnvKey      = "MERCHANT_ADDRESS"
	assetIDEnvKey      = "ASSET_ID"
	txFeeEnvKey        = "TX_FEE"
	startBlockEnvKey   = "START_BLOCK"
	jwtSecretEnvKey    = "JWT_SECRET"
	apiKeyIDEnvKey     = "API_KEY_ID"
	apiKeySecretEnvKey = "API_KEY_SECRET"
)

const defaultTxFee int64 = 100000

type App struct {
	Port            string
	NodeURL         string
	NodeAPIKey      string
	DBConnectionURL string
	Address         string
	AssetID         string
	TxFee           int64
	StartBlock      int64

	// optional, RPC auth is disabled when JWTSecret is empty
	JWTSecret    string
	APIKeyID     string
	APIKeySecret string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(nodeURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, nodeURLEnvKey)
	}

	nodeAPIKey, ok := os.LookupEnv(nodeAPIKeyEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, nodeAPIKeyEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	address, ok := os.LookupEnv(addressEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, addressEnvKey)
	}

	assetID, ok := os.LookupEnv(assetIDEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, assetIDEnvKey)
	}

	startBlockStr, ok := os.LookupEnv(startBlockEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, startBlockEnvKey)
	}
	startBlock, err := strconv.ParseInt(startBlockStr, 10, 64)
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", startBlockEnvKey, err)
	}

	txFee := defaultTxFee
	if feeStr, ok := os.LookupEnv(txFeeEnvKey); ok {
		txFee, err = strconv.ParseInt(feeStr, 10, 64)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", txFeeEnvKey, err)
		}
	}

	return App{
		Port:            port,
		NodeURL:         nodeURL,
		NodeAPIKey:      nodeAPIKey,
		DBConnectionURL: dbConn,
		Address:         address,
		AssetID:         assetID,
		TxFee:           txFee,
		StartBlock:      startBlock,
		JWTSecret:       os.Getenv(jwtSecretEnvKey),
		APIKeyID:        os.Getenv(apiKeyIDEnvKey),
		APIKeySecret:    os.Getenv(apiKeySecretEnvKey),
	}, nil
}
