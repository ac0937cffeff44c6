package scanner_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"paybridge/internal/node"
	"paybridge/internal/repository"
	"paybridge/internal/scanner"
	"paybridge/internal/scanner/fake"

	"github.com/mr-tron/base58"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Scanner", func() {
	var (
		fakeChain  *fake.ChainReader
		fakeStore  *fake.TransferStore
		fakeLogger *zap.SugaredLogger

		merchantAddress string
		scn             *scanner.Scanner

		ctx    context.Context
		cancel context.CancelFunc
		done   chan struct{}

		fakeErr error
	)

	BeforeEach(func() {
		fakeChain = new(fake.ChainReader)
		fakeStore = new(fake.TransferStore)
		fakeLogger = zap.NewNop().Sugar()
		merchantAddress = "3MqVmnnSHUPGFq5pzTxsUCyCvVEzBBssnGw"

		scn = scanner.NewScanner(fakeLogger, fakeChain, fakeStore, merchantAddress, 100).
			WithInterval(2 * time.Millisecond)

		ctx, cancel = context.WithCancel(context.Background())
		fakeErr = errors.New("fake error")
	})

	start := func() {
		done = make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)
			Expect(scn.Run(ctx)).To(Succeed())
		}()
	}

	stop := func() {
		cancel()
		Eventually(done).Should(BeClosed())
	}

	Describe("Run", func() {
		When("the stored cursor cannot be loaded", func() {
			BeforeEach(func() {
				fakeStore.ScanCursorReturns(0, fakeErr)
			})

			It("returns the error", func() {
				Expect(scn.Run(ctx)).To(MatchError(fakeErr))
			})
		})

		When("the chain is ahead of the cursor", func() {
			BeforeEach(func() {
				fakeStore.ScanCursorReturns(100, nil)
				fakeChain.HeightReturns(103, nil)
				fakeChain.BlockAtStub = func(_ context.Context, height int64) (node.Block, error) {
					return node.Block{Height: height}, nil
				}
			})

			It("drains settled blocks and defers the newest one", func() {
				start()
				Eventually(fakeChain.BlockAtCallCount).Should(BeNumerically(">=", 2))
				stop()

				_, first := fakeChain.BlockAtArgsForCall(0)
				Expect(first).To(Equal(int64(101)))
				_, second := fakeChain.BlockAtArgsForCall(1)
				Expect(second).To(Equal(int64(102)))

				// height 103 is not settled yet
				for i := 0; i < fakeChain.BlockAtCallCount(); i++ {
					_, h := fakeChain.BlockAtArgsForCall(i)
					Expect(h).To(BeNumerically("<=", 102))
				}
			})

			It("checkpoints the cursor after the drain", func() {
				start()
				Eventually(fakeStore.SetScanCursorCallCount).Should(BeNumerically(">=", 1))
				stop()

				_, checkpointed := fakeStore.SetScanCursorArgsForCall(0)
				Expect(checkpointed).To(Equal(int64(102)))
			})
		})

		When("a settled block carries deposits", func() {
			var attachment []byte

			BeforeEach(func() {
				attachment = []byte(`{"invoice_id": "inv-7"}`)

				fakeStore.ScanCursorReturns(100, nil)
				fakeChain.HeightReturns(102, nil)
				fakeChain.BlockAtReturns(node.Block{
					Height: 101,
					Transactions: []node.BlockTransaction{
						{
							Type:       4,
							ID:         "tx-match",
							Sender:     "3MsnsYrmzNUbY8FLJfJXPRRg4A2ogis9BFh",
							Recipient:  merchantAddress,
							Amount:     250000,
							Attachment: base58.Encode(attachment),
						},
						{Type: 4, ID: "tx-other-recipient", Recipient: "3MWrongAddress"},
						{Type: 2, ID: "tx-other-type", Recipient: merchantAddress},
					},
				}, nil)
			})

			It("records only transfers addressed to the merchant wallet", func() {
				start()
				Eventually(fakeStore.InsertInboundTransferCallCount).Should(BeNumerically(">=", 1))
				stop()

				_, inserted := fakeStore.InsertInboundTransferArgsForCall(0)
				Expect(inserted).To(Equal(repository.InboundTransfer{
					TxID:       "tx-match",
					Sender:     "3MsnsYrmzNUbY8FLJfJXPRRg4A2ogis9BFh",
					Recipient:  merchantAddress,
					Amount:     250000,
					Attachment: attachment,
					InvoiceID:  "inv-7",
					Height:     101,
				}))

				for i := 0; i < fakeStore.InsertInboundTransferCallCount(); i++ {
					_, tr := fakeStore.InsertInboundTransferArgsForCall(i)
					Expect(tr.TxID).To(Equal("tx-match"))
				}
			})
		})

		When("reading the chain height fails", func() {
			BeforeEach(func() {
				fakeStore.ScanCursorReturns(100, nil)
				fakeChain.HeightReturns(0, fakeErr)
			})

			It("keeps the cursor and retries on the next tick", func() {
				start()
				Eventually(fakeChain.HeightCallCount).Should(BeNumerically(">=", 2))
				stop()

				Expect(fakeChain.BlockAtCallCount()).To(Equal(0))
				_, final := fakeStore.SetScanCursorArgsForCall(fakeStore.SetScanCursorCallCount() - 1)
				Expect(final).To(Equal(int64(100)))
			})
		})

		When("persisting a block fails", func() {
			var failures int32

			BeforeEach(func() {
				fakeStore.ScanCursorReturns(100, nil)
				fakeChain.HeightReturns(102, nil)
				fakeChain.BlockAtStub = func(_ context.Context, height int64) (node.Block, error) {
					return node.Block{
						Height: height,
						Transactions: []node.BlockTransaction{
							{Type: 4, ID: "tx-1", Recipient: merchantAddress, Amount: 10},
						},
					}, nil
				}
				fakeStore.InsertInboundTransferStub = func(context.Context, repository.InboundTransfer) error {
					if atomic.AddInt32(&failures, 1) <= 2 {
						return fakeErr
					}
					return nil
				}
			})

			It("does not advance past the failed height", func() {
				start()
				Eventually(fakeStore.InsertInboundTransferCallCount).Should(BeNumerically(">=", 3))
				stop()

				// the failed height is re-fetched until the insert succeeds
				for i := 0; i < 3; i++ {
					_, h := fakeChain.BlockAtArgsForCall(i)
					Expect(h).To(Equal(int64(101)))
				}
			})
		})

		When("the context is cancelled", func() {
			BeforeEach(func() {
				fakeStore.ScanCursorReturns(100, nil)
				fakeChain.HeightReturns(101, nil)
			})

			It("checkpoints the cursor before returning", func() {
				start()
				Eventually(fakeChain.HeightCallCount).Should(BeNumerically(">=", 1))
				stop()

				Expect(fakeStore.SetScanCursorCallCount()).To(BeNumerically(">=", 1))
				_, final := fakeStore.SetScanCursorArgsForCall(fakeStore.SetScanCursorCallCount() - 1)
				Expect(final).To(Equal(int64(100)))
			})
		})
	})
})
