package payload

import (
	"github.com/jellydator/validation"
)

// CreateTransactionRequest creates an outbound transfer. Attachment is
// optional raw bytes, base64 on the wire per encoding/json convention.
type CreateTransactionRequest struct {
	Recipient  string `json:"recipient"`
	Amount     int64  `json:"amount"`
	Attachment []byte `json:"attachment"`
}

func (c CreateTransactionRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Recipient, validation.Required),
		validation.Field(&c.Amount, validation.Required, validation.Min(1)),
	)
}

type BroadcastTransactionRequest struct {
	TxID string `json:"txid"`
}

func (b BroadcastTransactionRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.TxID, validation.Required),
	)
}

type AuthRequest struct {
	KeyID     string `json:"key_id"`
	KeySecret string `json:"key_secret"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.KeyID, validation.Required),
		validation.Field(&a.KeySecret, validation.Required),
	)
}
