package repository

// Transfer lifecycle states for outbound transactions. Transitions are
// monotonic: created -> broadcast, never back.
const (
	StateCreated   = "created"
	StateBroadcast = "broadcast"
)

// ScanCursorKey names the single persisted scan checkpoint.
const ScanCursorKey = "scanned_block_height"

// InboundTransfer is an observed on-chain transfer to the merchant address.
// Append-only; the surrogate ID preserves arrival order.
type InboundTransfer struct {
	ID         uint   `gorm:"primaryKey"`
	TxID       string `gorm:"size:64;uniqueIndex;not null"`
	Sender     string `gorm:"size:64;not null"`
	Recipient  string `gorm:"size:64;not null;index"`
	Amount     int64  `gorm:"not null"`
	Attachment []byte
	InvoiceID  string `gorm:"size:255;index"`
	Height     int64  `gorm:"not null"`
}

// OutboundTransfer is a transfer the merchant initiated. The txid is computed
// once at creation from the signed payload and never recomputed. Rows are
// never deleted, they double as an idempotency log.
type OutboundTransfer struct {
	ID         uint   `gorm:"primaryKey"`
	TxID       string `gorm:"size:64;uniqueIndex;not null"`
	State      string `gorm:"size:16;not null"`
	Amount     int64  `gorm:"not null"`
	SignedJSON []byte `gorm:"not null"` // exact bytes the node accepts for broadcast
}

// Setting is a named scalar, used for the scan cursor.
type Setting struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"not null"`
}
