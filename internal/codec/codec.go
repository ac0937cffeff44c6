package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// transferTxType is the ledger's tag for asset transfer transactions.
const transferTxType byte = 4

var ErrMissingField error = errors.New("missing required field")

// TransferFields are the signed fields of an asset transfer as returned by the
// node. Asset ids are optional: an empty string means the chain's native token.
type TransferFields struct {
	SenderPublicKey string
	AssetID         string
	FeeAssetID      string
	Timestamp       int64
	Amount          int64
	Fee             int64
	Recipient       string
	Attachment      []byte
}

// EncodeTransfer serializes transfer fields into the ledger's canonical binary
// layout. The layout is a compatibility contract with the upstream chain: the
// hash of these exact bytes is the transaction id the node will assign.
func EncodeTransfer(tx TransferFields) ([]byte, error) {
	if tx.SenderPublicKey == "" {
		return nil, fmt.Errorf("%w: senderPublicKey", ErrMissingField)
	}
	if tx.Recipient == "" {
		return nil, fmt.Errorf("%w: recipient", ErrMissingField)
	}

	senderPK, err := base58.Decode(tx.SenderPublicKey)
	if err != nil {
		return nil, fmt.Errorf("decode senderPublicKey: %w", err)
	}
	recipient, err := base58.Decode(tx.Recipient)
	if err != nil {
		return nil, fmt.Errorf("decode recipient: %w", err)
	}

	data := make([]byte, 0, 128+len(tx.Attachment))
	data = append(data, transferTxType)
	data = append(data, senderPK...)

	data, err = appendOptionalAsset(data, tx.AssetID)
	if err != nil {
		return nil, fmt.Errorf("decode assetId: %w", err)
	}
	data, err = appendOptionalAsset(data, tx.FeeAssetID)
	if err != nil {
		return nil, fmt.Errorf("decode feeAssetId: %w", err)
	}

	data = binary.BigEndian.AppendUint64(data, uint64(tx.Timestamp))
	data = binary.BigEndian.AppendUint64(data, uint64(tx.Amount))
	data = binary.BigEndian.AppendUint64(data, uint64(tx.Fee))
	data = append(data, recipient...)
	data = binary.BigEndian.AppendUint16(data, uint16(len(tx.Attachment)))
	data = append(data, tx.Attachment...)

	return data, nil
}

// TxID derives the canonical transaction id from serialized transaction bytes.
func TxID(data []byte) string {
	digest := blake2b.Sum256(data)
	return base58.Encode(digest[:])
}

// TransferTxID is EncodeTransfer followed by TxID.
func TransferTxID(tx TransferFields) (string, error) {
	data, err := EncodeTransfer(tx)
	if err != nil {
		return "", err
	}
	return TxID(data), nil
}

func appendOptionalAsset(data []byte, assetID string) ([]byte, error) {
	if assetID == "" {
		return append(data, 0), nil
	}
	raw, err := base58.Decode(assetID)
	if err != nil {
		return nil, err
	}
	data = append(data, 1)
	return append(data, raw...), nil
}
