package repository_test

import (
	"context"
	"errors"

	"paybridge/internal/db"
	"paybridge/internal/repository"
	"paybridge/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BridgeRepository", func() {
	var (
		fakeStorage *fake.Storage
		repo        *repository.BridgeRepository
		ctx         context.Context

		fakeErr error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		ctx = context.Background()

		repo = repository.NewBridgeRepository(fakeStorage)

		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		It("migrates all bridge tables", func() {
			Expect(repo.Migrate()).To(Succeed())
			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			Expect(fakeStorage.MigrateTableArgsForCall(0)).To(HaveLen(3))
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(repo.Migrate()).To(MatchError(fakeErr))
			})
		})
	})

	Describe("InsertInboundTransfer", func() {
		var (
			transfer repository.InboundTransfer
			err      error
		)

		BeforeEach(func() {
			transfer = repository.InboundTransfer{
				TxID:      "9hFkVrb6UxwcjY7HPW4CrisqDbrLBA8i8VfJqXnYP1Pb",
				Sender:    "3MsnsYrmzNUbY8FLJfJXPRRg4A2ogis9BFh",
				Recipient: "3MqVmnnSHUPGFq5pzTxsUCyCvVEzBBssnGw",
				Amount:    250000,
				InvoiceID: "inv-42",
				Height:    1043,
			}
		})

		JustBeforeEach(func() {
			err = repo.InsertInboundTransfer(ctx, transfer)
		})

		It("inserts ignoring txid conflicts", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.CreateIgnoreCallCount()).To(Equal(1))
			_, record := fakeStorage.CreateIgnoreArgsForCall(0)
			Expect(record).To(Equal(&transfer))
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateIgnoreReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("InboundByInvoiceID", func() {
		var (
			transfers []repository.InboundTransfer
			err       error
		)

		JustBeforeEach(func() {
			transfers, err = repo.InboundByInvoiceID(ctx, "inv-42")
		})

		When("deposits exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(_ context.Context, column string, value any, orderBy string, entity any) error {
					Expect(column).To(Equal("invoice_id"))
					Expect(value).To(Equal("inv-42"))
					Expect(orderBy).To(Equal("id asc"))
					out := entity.(*[]repository.InboundTransfer)
					*out = []repository.InboundTransfer{
						{ID: 1, TxID: "tx-a", InvoiceID: "inv-42"},
						{ID: 2, TxID: "tx-b", InvoiceID: "inv-42"},
					}
					return nil
				}
			})

			It("returns them in arrival order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transfers).To(HaveLen(2))
				Expect(transfers[0].TxID).To(Equal("tx-a"))
				Expect(transfers[1].TxID).To(Equal("tx-b"))
			})
		})

		When("no deposits match", func() {
			It("returns an empty slice without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transfers).To(BeEmpty())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("OutboundByTxID", func() {
		var (
			transfer repository.OutboundTransfer
			err      error
		)

		JustBeforeEach(func() {
			transfer, err = repo.OutboundByTxID(ctx, "tx-out")
		})

		When("the transfer exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("tx_id"))
					Expect(value).To(Equal("tx-out"))
					out := entity.(*repository.OutboundTransfer)
					*out = repository.OutboundTransfer{TxID: "tx-out", State: repository.StateCreated}
					return nil
				}
			})

			It("returns the transfer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transfer.State).To(Equal(repository.StateCreated))
			})
		})

		When("the transfer does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns a not found error", func() {
				Expect(err).To(MatchError(repository.ErrTxNotFound))
			})
		})
	})

	Describe("SetOutboundState", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.SetOutboundState(ctx, "tx-out", repository.StateBroadcast)
		})

		It("updates only the state column", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.UpdateColumnsCallCount()).To(Equal(1))
			_, _, whereColumn, whereValue, updates := fakeStorage.UpdateColumnsArgsForCall(0)
			Expect(whereColumn).To(Equal("tx_id"))
			Expect(whereValue).To(Equal("tx-out"))
			Expect(updates).To(Equal(map[string]any{"state": repository.StateBroadcast}))
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateColumnsReturns(db.ErrNotFound)
			})

			It("returns a not found error", func() {
				Expect(err).To(MatchError(repository.ErrTxNotFound))
			})
		})
	})

	Describe("ScanCursor", func() {
		var (
			height int64
			err    error
		)

		JustBeforeEach(func() {
			height, err = repo.ScanCursor(ctx, 1000)
		})

		When("a checkpoint is stored", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("key"))
					Expect(value).To(Equal(repository.ScanCursorKey))
					out := entity.(*repository.Setting)
					*out = repository.Setting{Key: repository.ScanCursorKey, Value: "1742"}
					return nil
				}
			})

			It("returns the stored height", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(height).To(Equal(int64(1742)))
			})
		})

		When("no checkpoint is stored", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns the fallback", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(height).To(Equal(int64(1000)))
			})
		})

		When("the stored value is malformed", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
					out := entity.(*repository.Setting)
					*out = repository.Setting{Key: repository.ScanCursorKey, Value: "not-a-number"}
					return nil
				}
			})

			It("returns a parse error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("SetScanCursor", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.SetScanCursor(ctx, 1800)
		})

		When("the cursor moves forward", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
					out := entity.(*repository.Setting)
					*out = repository.Setting{Key: repository.ScanCursorKey, Value: "1742"}
					return nil
				}
			})

			It("upserts the new checkpoint", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.UpsertCallCount()).To(Equal(1))
				_, record, conflictColumn, updateColumns := fakeStorage.UpsertArgsForCall(0)
				Expect(conflictColumn).To(Equal("key"))
				Expect(updateColumns).To(Equal([]string{"value"}))
				setting := record.(*repository.Setting)
				Expect(setting.Value).To(Equal("1800"))
			})
		})

		When("no checkpoint exists yet", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("stores the first checkpoint", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.UpsertCallCount()).To(Equal(1))
			})
		})

		When("the cursor would move backwards", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
					out := entity.(*repository.Setting)
					*out = repository.Setting{Key: repository.ScanCursorKey, Value: "2500"}
					return nil
				}
			})

			It("rejects the update", func() {
				Expect(err).To(HaveOccurred())
				Expect(fakeStorage.UpsertCallCount()).To(Equal(0))
			})
		})
	})
})
