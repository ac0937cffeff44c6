package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"paybridge/internal/db"
)

var ErrTxNotFound error = errors.New("transaction not found")

type BridgeRepository struct {
	db Storage
}

func NewBridgeRepository(db Storage) *BridgeRepository {
	return &BridgeRepository{
		db: db,
	}
}

func (r *BridgeRepository) Migrate() error {
	err := r.db.MigrateTable(&InboundTransfer{}, &OutboundTransfer{}, &Setting{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// InsertInboundTransfer records an observed deposit. Re-inserting the same
// chain txid is a no-op so re-scanning a block never duplicates records.
func (r *BridgeRepository) InsertInboundTransfer(ctx context.Context, transfer InboundTransfer) error {
	err := r.db.CreateIgnore(ctx, &transfer)
	if err != nil {
		return fmt.Errorf("insert inbound transfer: %w", err)
	}
	return nil
}

// InboundByInvoiceID returns deposits carrying the invoice id, in arrival
// order. An empty result is not an error.
func (r *BridgeRepository) InboundByInvoiceID(ctx context.Context, invoiceID string) ([]InboundTransfer, error) {
	transfers := []InboundTransfer{}
	err := r.db.GetAllBy(ctx, "invoice_id", invoiceID, "id asc", &transfers)
	if err != nil {
		return nil, fmt.Errorf("get inbound transfers by invoice id: %w", err)
	}
	return transfers, nil
}

func (r *BridgeRepository) CreateOutboundTransfer(ctx context.Context, transfer OutboundTransfer) error {
	err := r.db.Create(ctx, &transfer)
	if err != nil {
		return fmt.Errorf("create outbound transfer: %w", err)
	}
	return nil
}

func (r *BridgeRepository) OutboundByTxID(ctx context.Context, txid string) (OutboundTransfer, error) {
	var transfer OutboundTransfer
	err := r.db.GetOneBy(ctx, "tx_id", txid, &transfer)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return OutboundTransfer{}, ErrTxNotFound
		}
		return OutboundTransfer{}, fmt.Errorf("get outbound transfer by txid: %w", err)
	}
	return transfer, nil
}

func (r *BridgeRepository) SetOutboundState(ctx context.Context, txid, state string) error {
	err := r.db.UpdateColumns(ctx, &OutboundTransfer{}, "tx_id", txid, map[string]any{"state": state})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrTxNotFound
		}
		return fmt.Errorf("set outbound transfer state: %w", err)
	}
	return nil
}

// ScanCursor returns the persisted scan checkpoint, or the fallback when none
// has been stored yet.
func (r *BridgeRepository) ScanCursor(ctx context.Context, fallback int64) (int64, error) {
	var setting Setting
	err := r.db.GetOneBy(ctx, "key", ScanCursorKey, &setting)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fallback, nil
		}
		return 0, fmt.Errorf("get scan cursor: %w", err)
	}

	height, err := strconv.ParseInt(setting.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse scan cursor %q: %w", setting.Value, err)
	}
	return height, nil
}

// SetScanCursor durably checkpoints the scan cursor. The cursor is
// monotonically non-decreasing; attempts to move it backwards are rejected.
func (r *BridgeRepository) SetScanCursor(ctx context.Context, height int64) error {
	current, err := r.ScanCursor(ctx, -1)
	if err != nil {
		return err
	}
	if height < current {
		return fmt.Errorf("scan cursor would decrease: %d < %d", height, current)
	}

	setting := Setting{
		Key:   ScanCursorKey,
		Value: strconv.FormatInt(height, 10),
	}
	err = r.db.Upsert(ctx, &setting, "key", []string{"value"})
	if err != nil {
		return fmt.Errorf("set scan cursor: %w", err)
	}
	return nil
}
