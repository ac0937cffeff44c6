package scanner

import (
	"context"
	"fmt"
	"time"

	"paybridge/internal/invoice"
	"paybridge/internal/node"
	"paybridge/internal/repository"

	"github.com/mr-tron/base58"
	"go.uber.org/zap"
)

const (
	transferTxType = 4
	// cursor is durably checkpointed every checkpointEvery blocks while the
	// inner loop is catching up, and once more when it drains
	checkpointEvery = 100
	defaultInterval = 5 * time.Second
	// pause between processed blocks so a long catch-up does not starve the
	// RPC service
	blockYield = 10 * time.Millisecond
)

// Scanner polls the chain for new blocks and records transfers addressed to
// the merchant wallet. It is the only writer of the scan cursor.
type Scanner struct {
	logs       *zap.SugaredLogger
	chain      ChainReader
	store      TransferStore
	address    string
	startBlock int64
	interval   time.Duration
}

func NewScanner(logger *zap.SugaredLogger, chain ChainReader, store TransferStore, address string, startBlock int64) *Scanner {
	return &Scanner{
		logs:       logger,
		chain:      chain,
		store:      store,
		address:    address,
		startBlock: startBlock,
		interval:   defaultInterval,
	}
}

// WithInterval overrides the poll interval, used by tests.
func (s *Scanner) WithInterval(interval time.Duration) *Scanner {
	s.interval = interval
	return s
}

// Run executes the scan loop until the context is cancelled. The current
// block is always fully persisted before the cursor advances past it, so a
// crash or restart re-scans at most one block (which is idempotent).
func (s *Scanner) Run(ctx context.Context) error {
	cursor, err := s.store.ScanCursor(ctx, s.startBlock)
	if err != nil {
		return fmt.Errorf("load scan cursor: %w", err)
	}
	s.logs.Infow("scanner started", "cursor", cursor)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.checkpoint(cursor)
			s.logs.Infow("scanner stopped", "cursor", cursor)
			return nil
		case <-ticker.C:
			cursor = s.catchUp(ctx, cursor)
		}
	}
}

// catchUp drains all fully settled blocks past the cursor and returns the new
// cursor position. It stops early on the first failure; the failed height is
// retried on the next tick because the cursor is not advanced past it.
func (s *Scanner) catchUp(ctx context.Context, cursor int64) int64 {
	for {
		height, err := s.chain.Height(ctx)
		if err != nil {
			s.logs.Errorw("read chain height", "error", err)
			return cursor
		}

		// the newest block may still collect transactions until the next
		// block is found, so it is deferred by one
		if height-1 <= cursor {
			break
		}

		block, err := s.chain.BlockAt(ctx, cursor+1)
		if err != nil {
			s.logs.Errorw("fetch block", "height", cursor+1, "error", err)
			return cursor
		}

		if err := s.processBlock(ctx, block); err != nil {
			s.logs.Errorw("process block", "height", block.Height, "error", err)
			return cursor
		}

		cursor = block.Height
		s.logs.Debugw("scanned block", "height", cursor)

		if cursor%checkpointEvery == 0 {
			s.checkpoint(cursor)
		}

		select {
		case <-ctx.Done():
			s.checkpoint(cursor)
			return cursor
		case <-time.After(blockYield):
		}
	}

	s.checkpoint(cursor)
	return cursor
}

// processBlock persists every transfer in the block addressed to the merchant
// wallet. Inserts are keyed by chain txid, so re-processing a block is a
// no-op.
func (s *Scanner) processBlock(ctx context.Context, block node.Block) error {
	for _, tx := range block.Transactions {
		if tx.Type != transferTxType || tx.Recipient != s.address {
			continue
		}

		var attachment []byte
		if tx.Attachment != "" {
			raw, err := base58.Decode(tx.Attachment)
			if err != nil {
				s.logs.Warnw("undecodable attachment", "txid", tx.ID, "error", err)
			} else {
				attachment = raw
			}
		}

		invoiceID := invoice.ExtractID(attachment)
		s.logs.Infow("new deposit",
			"txid", tx.ID,
			"amount", tx.Amount,
			"invoice_id", invoiceID,
			"height", block.Height)

		err := s.store.InsertInboundTransfer(ctx, repository.InboundTransfer{
			TxID:       tx.ID,
			Sender:     tx.Sender,
			Recipient:  tx.Recipient,
			Amount:     tx.Amount,
			Attachment: attachment,
			InvoiceID:  invoiceID,
			Height:     block.Height,
		})
		if err != nil {
			return fmt.Errorf("insert inbound transfer %q: %w", tx.ID, err)
		}
	}
	return nil
}

func (s *Scanner) checkpoint(cursor int64) {
	// checkpointing is detached from the loop context so the final
	// checkpoint still runs during shutdown
	if err := s.store.SetScanCursor(context.Background(), cursor); err != nil {
		s.logs.Errorw("checkpoint scan cursor", "cursor", cursor, "error", err)
	}
}
