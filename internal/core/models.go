package core

// WalletHandle identifies the merchant wallet the bridge operates for. It is
// resolved once at startup and passed explicitly into every component that
// needs it.
type WalletHandle struct {
	Address string
	AssetID string
	Fee     int64
}

// TransferRecord is an observed deposit as reported to the merchant
// application.
type TransferRecord struct {
	TxID       string `json:"txid"`
	Sender     string `json:"sender"`
	Recipient  string `json:"recipient"`
	Amount     int64  `json:"amount"`
	Attachment []byte `json:"attachment"`
	InvoiceID  string `json:"invoice_id"`
	Height     int64  `json:"height"`
}

// TxStatus reports an outbound transaction and its lifecycle state.
type TxStatus struct {
	TxID  string `json:"txid"`
	State string `json:"state"`
}
