package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"paybridge/internal/core"
	tokenIssuer "paybridge/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BridgeService . BridgeService
type BridgeService interface {
	Balance(ctx context.Context) (json.RawMessage, error)
	ListTransactions(ctx context.Context, invoiceID string) ([]core.TransferRecord, error)
	CreateTransaction(ctx context.Context, recipient string, amount int64, attachment []byte) (core.TxStatus, error)
	BroadcastTransaction(ctx context.Context, txid string) (core.TxStatus, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}
