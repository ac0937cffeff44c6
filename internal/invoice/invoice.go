package invoice

import "encoding/json"

type attachmentPayload struct {
	InvoiceID string `json:"invoice_id"`
}

// ExtractID pulls a merchant invoice identifier out of raw attachment bytes.
// The attachment protocol is a JSON object with an "invoice_id" member;
// anything else is not an error, deposits without an invoice are still valid.
func ExtractID(attachment []byte) string {
	if len(attachment) == 0 {
		return ""
	}
	var payload attachmentPayload
	if err := json.Unmarshal(attachment, &payload); err != nil {
		return ""
	}
	return payload.InvoiceID
}
