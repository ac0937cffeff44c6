package codec_test

import (
	"bytes"
	"encoding/binary"

	"paybridge/internal/codec"

	"github.com/mr-tron/base58"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Codec", func() {
	var (
		senderPK  []byte
		recipient []byte
		assetID   []byte
		fields    codec.TransferFields
	)

	BeforeEach(func() {
		senderPK = bytes.Repeat([]byte{0xAB}, 32)
		recipient = bytes.Repeat([]byte{0xCD}, 26)
		assetID = bytes.Repeat([]byte{0x11}, 32)

		fields = codec.TransferFields{
			SenderPublicKey: base58.Encode(senderPK),
			AssetID:         base58.Encode(assetID),
			FeeAssetID:      "",
			Timestamp:       1608000000000,
			Amount:          500000,
			Fee:             100000,
			Recipient:       base58.Encode(recipient),
			Attachment:      []byte(`{"invoice_id": "INV-1"}`),
		}
	})

	Describe("EncodeTransfer", func() {
		var (
			data []byte
			err  error
		)

		JustBeforeEach(func() {
			data, err = codec.EncodeTransfer(fields)
		})

		It("should serialize fields in the canonical layout", func() {
			Expect(err).NotTo(HaveOccurred())

			expected := []byte{4}
			expected = append(expected, senderPK...)
			expected = append(expected, 1)
			expected = append(expected, assetID...)
			expected = append(expected, 0)
			expected = binary.BigEndian.AppendUint64(expected, uint64(fields.Timestamp))
			expected = binary.BigEndian.AppendUint64(expected, uint64(fields.Amount))
			expected = binary.BigEndian.AppendUint64(expected, uint64(fields.Fee))
			expected = append(expected, recipient...)
			expected = binary.BigEndian.AppendUint16(expected, uint16(len(fields.Attachment)))
			expected = append(expected, fields.Attachment...)

			Expect(data).To(Equal(expected))
		})

		When("both asset ids are empty", func() {
			BeforeEach(func() {
				fields.AssetID = ""
				fields.FeeAssetID = ""
			})

			It("should emit a zero presence flag for each", func() {
				Expect(err).NotTo(HaveOccurred())
				// type tag + sender public key, then the two flags
				Expect(data[33]).To(Equal(byte(0)))
				Expect(data[34]).To(Equal(byte(0)))
			})
		})

		When("the attachment is empty", func() {
			BeforeEach(func() {
				fields.Attachment = nil
			})

			It("should end with a zero length prefix", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(data[len(data)-2:]).To(Equal([]byte{0, 0}))
			})
		})

		When("the sender public key is missing", func() {
			BeforeEach(func() {
				fields.SenderPublicKey = ""
			})

			It("should return a missing field error", func() {
				Expect(err).To(MatchError(codec.ErrMissingField))
			})
		})

		When("the recipient is missing", func() {
			BeforeEach(func() {
				fields.Recipient = ""
			})

			It("should return a missing field error", func() {
				Expect(err).To(MatchError(codec.ErrMissingField))
			})
		})

		When("the recipient is not valid base58", func() {
			BeforeEach(func() {
				fields.Recipient = "0OIl"
			})

			It("should return a decode error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("TransferTxID", func() {
		It("should be deterministic", func() {
			id1, err := codec.TransferTxID(fields)
			Expect(err).NotTo(HaveOccurred())
			id2, err := codec.TransferTxID(fields)
			Expect(err).NotTo(HaveOccurred())
			Expect(id1).To(Equal(id2))
			Expect(id1).NotTo(BeEmpty())
		})

		It("should change when any field changes", func() {
			original, err := codec.TransferTxID(fields)
			Expect(err).NotTo(HaveOccurred())

			mutations := []func(*codec.TransferFields){
				func(f *codec.TransferFields) { f.Amount++ },
				func(f *codec.TransferFields) { f.Fee++ },
				func(f *codec.TransferFields) { f.Timestamp++ },
				func(f *codec.TransferFields) { f.Attachment = []byte("x") },
				func(f *codec.TransferFields) { f.AssetID = "" },
			}

			for _, mutate := range mutations {
				mutated := fields
				mutate(&mutated)
				id, err := codec.TransferTxID(mutated)
				Expect(err).NotTo(HaveOccurred())
				Expect(id).NotTo(Equal(original))
			}
		})

		It("should match the id of the hashed serialized bytes", func() {
			data, err := codec.EncodeTransfer(fields)
			Expect(err).NotTo(HaveOccurred())

			id, err := codec.TransferTxID(fields)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(codec.TxID(data)))
		})
	})
})
