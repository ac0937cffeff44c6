package scanner

import (
	"context"

	"paybridge/internal/node"
	"paybridge/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	Height(ctx context.Context) (int64, error)
	BlockAt(ctx context.Context, height int64) (node.Block, error)
}

//counterfeiter:generate -o fake -fake-name TransferStore . TransferStore
type TransferStore interface {
	InsertInboundTransfer(ctx context.Context, transfer repository.InboundTransfer) error
	ScanCursor(ctx context.Context, fallback int64) (int64, error)
	SetScanCursor(ctx context.Context, height int64) error
}
