package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"paybridge/internal/codec"
	"paybridge/internal/node"
	"paybridge/internal/repository"

	"github.com/mr-tron/base58"
	"go.uber.org/zap"
)

var ErrTxNotFound error = errors.New("transaction not found")
var ErrBroadcastRejected error = errors.New("broadcast rejected by node")

// Bridge implements the payment bridge RPC operations on top of the node
// client and the persistent store.
type Bridge struct {
	logs   *zap.SugaredLogger
	repo   Repository
	node   NodeService
	wallet WalletHandle
}

func NewBridge(logger *zap.SugaredLogger, repo Repository, nodeService NodeService, wallet WalletHandle) *Bridge {
	return &Bridge{
		logs:   logger,
		repo:   repo,
		node:   nodeService,
		wallet: wallet,
	}
}

// Balance proxies the node's asset balance payload for the merchant wallet.
func (b *Bridge) Balance(ctx context.Context) (json.RawMessage, error) {
	balance, err := b.node.AssetBalance(ctx, b.wallet.Address, b.wallet.AssetID)
	if err != nil {
		return nil, fmt.Errorf("asset balance: %w", err)
	}
	return balance, nil
}

// ListTransactions returns observed deposits carrying the invoice id, in
// arrival order. An empty result is not an error.
func (b *Bridge) ListTransactions(ctx context.Context, invoiceID string) ([]TransferRecord, error) {
	transfers, err := b.repo.InboundByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("inbound transfers by invoice id: %w", err)
	}

	records := make([]TransferRecord, len(transfers))
	for i, tx := range transfers {
		records[i] = TransferRecord{
			TxID:       tx.TxID,
			Sender:     tx.Sender,
			Recipient:  tx.Recipient,
			Amount:     tx.Amount,
			Attachment: tx.Attachment,
			InvoiceID:  tx.InvoiceID,
			Height:     tx.Height,
		}
	}
	return records, nil
}

// CreateTransaction asks the node wallet to build and sign an asset transfer,
// recomputes the transaction id locally from the signed fields and records the
// transfer in state created. The id reported by the signer is never trusted.
func (b *Bridge) CreateTransaction(ctx context.Context, recipient string, amount int64, attachment []byte) (TxStatus, error) {
	signed, signedPayload, err := b.node.SignTransfer(ctx, node.TransferRequest{
		Sender:     b.wallet.Address,
		Recipient:  recipient,
		AssetID:    b.wallet.AssetID,
		Amount:     amount,
		Fee:        b.wallet.Fee,
		Attachment: base58.Encode(attachment),
	})
	if err != nil {
		return TxStatus{}, fmt.Errorf("sign transfer: %w", err)
	}

	txid, err := b.transferTxID(signed)
	if err != nil {
		return TxStatus{}, fmt.Errorf("compute txid: %w", err)
	}
	if signed.ID != "" && signed.ID != txid {
		b.logs.Warnw("node reported txid differs from computed txid",
			"node_txid", signed.ID,
			"computed_txid", txid)
	}

	err = b.repo.CreateOutboundTransfer(ctx, repository.OutboundTransfer{
		TxID:       txid,
		State:      repository.StateCreated,
		Amount:     signed.Amount,
		SignedJSON: signedPayload,
	})
	if err != nil {
		return TxStatus{}, fmt.Errorf("store outbound transfer: %w", err)
	}

	b.logs.Infow("outbound transfer created", "txid", txid, "amount", signed.Amount)
	return TxStatus{TxID: txid, State: repository.StateCreated}, nil
}

// BroadcastTransaction submits the stored signed payload for an already
// created transfer. A rejected broadcast leaves the state at created so the
// caller can safely retry the same txid; re-broadcasting an already broadcast
// txid succeeds idempotently.
func (b *Bridge) BroadcastTransaction(ctx context.Context, txid string) (TxStatus, error) {
	transfer, err := b.repo.OutboundByTxID(ctx, txid)
	if err != nil {
		if errors.Is(err, repository.ErrTxNotFound) {
			return TxStatus{}, ErrTxNotFound
		}
		return TxStatus{}, fmt.Errorf("outbound transfer by txid: %w", err)
	}

	if transfer.State == repository.StateBroadcast {
		b.logs.Infow("transfer already broadcast", "txid", txid)
		return TxStatus{TxID: txid, State: repository.StateBroadcast}, nil
	}

	if err := b.node.Broadcast(ctx, transfer.SignedJSON); err != nil {
		b.logs.Errorw("broadcast failed", "txid", txid, "error", err)
		return TxStatus{TxID: txid, State: transfer.State},
			fmt.Errorf("%w: %w", ErrBroadcastRejected, err)
	}

	if err := b.repo.SetOutboundState(ctx, txid, repository.StateBroadcast); err != nil {
		// the chain has the transaction but the local state is stale;
		// a later broadcast retry resolves this idempotently
		b.logs.Errorw("node accepted broadcast but state update failed", "txid", txid, "error", err)
		return TxStatus{}, fmt.Errorf("update outbound transfer state: %w", err)
	}

	b.logs.Infow("transfer broadcast", "txid", txid)
	return TxStatus{TxID: txid, State: repository.StateBroadcast}, nil
}

func (b *Bridge) transferTxID(signed node.SignedTransfer) (string, error) {
	var attachment []byte
	if signed.Attachment != "" {
		raw, err := base58.Decode(signed.Attachment)
		if err != nil {
			return "", fmt.Errorf("decode attachment: %w", err)
		}
		attachment = raw
	}

	return codec.TransferTxID(codec.TransferFields{
		SenderPublicKey: signed.SenderPublicKey,
		AssetID:         signed.AssetID,
		FeeAssetID:      signed.FeeAssetID,
		Timestamp:       signed.Timestamp,
		Amount:          signed.Amount,
		Fee:             signed.Fee,
		Recipient:       signed.Recipient,
		Attachment:      attachment,
	})
}
