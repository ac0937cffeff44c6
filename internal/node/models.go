package node

// Block is the subset of the node's block representation the bridge consumes.
type Block struct {
	Height       int64              `json:"height"`
	Transactions []BlockTransaction `json:"transactions"`
}

// BlockTransaction is a transaction as reported inside a block. Attachment is
// the node's textual (base58) encoding of the raw attachment bytes.
type BlockTransaction struct {
	Type       int    `json:"type"`
	ID         string `json:"id"`
	Sender     string `json:"sender"`
	Recipient  string `json:"recipient"`
	Amount     int64  `json:"amount"`
	Attachment string `json:"attachment"`
}

// TransferRequest asks the node wallet to build and sign an asset transfer.
type TransferRequest struct {
	Sender     string `json:"sender"`
	Recipient  string `json:"recipient"`
	AssetID    string `json:"assetId,omitempty"`
	FeeAssetID string `json:"feeAssetId,omitempty"`
	Amount     int64  `json:"amount"`
	Fee        int64  `json:"fee"`
	Attachment string `json:"attachment"`
}

// SignedTransfer is the signed transaction returned by the node. The node also
// reports an id, but it is never trusted: the bridge recomputes it from the
// signed fields.
type SignedTransfer struct {
	ID              string `json:"id"`
	SenderPublicKey string `json:"senderPublicKey"`
	AssetID         string `json:"assetId"`
	FeeAssetID      string `json:"feeAssetId"`
	Timestamp       int64  `json:"timestamp"`
	Amount          int64  `json:"amount"`
	Fee             int64  `json:"fee"`
	Recipient       string `json:"recipient"`
	Attachment      string `json:"attachment"`
	Signature       string `json:"signature"`
}
