package core

import (
	"context"
	"encoding/json"

	"paybridge/internal/node"
	"paybridge/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	InboundByInvoiceID(ctx context.Context, invoiceID string) ([]repository.InboundTransfer, error)
	CreateOutboundTransfer(ctx context.Context, transfer repository.OutboundTransfer) error
	OutboundByTxID(ctx context.Context, txid string) (repository.OutboundTransfer, error)
	SetOutboundState(ctx context.Context, txid, state string) error
}

//counterfeiter:generate -o fake -fake-name NodeService . NodeService
type NodeService interface {
	AssetBalance(ctx context.Context, address, assetID string) (json.RawMessage, error)
	SignTransfer(ctx context.Context, transfer node.TransferRequest) (node.SignedTransfer, []byte, error)
	Broadcast(ctx context.Context, signedPayload []byte) error
}
