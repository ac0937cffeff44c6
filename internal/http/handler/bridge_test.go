package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"paybridge/internal/core"
	"paybridge/internal/http/handler"
	"paybridge/internal/http/handler/fake"
	"paybridge/internal/node"
	"paybridge/internal/repository"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("BridgeHandler", func() {
	var (
		bh            *handler.BridgeHandler
		fakeService   *fake.BridgeService
		fakeValidator *fake.RequestValidator
		fakeTokens    *fake.TokenIssuer
		fakeLogger    *zap.SugaredLogger
		apiKey        handler.APIKey
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.BridgeService)
		fakeValidator = new(fake.RequestValidator)
		fakeTokens = new(fake.TokenIssuer)
		apiKey = handler.APIKey{ID: "merchant-1", Secret: "s3cret"}

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		bh = handler.NewBridgeHandler(fakeLogger, fakeValidator, fakeService, fakeTokens, apiKey)
	})

	Describe("HandleAuthenticate", func() {
		var response map[string]string

		BeforeEach(func() {
			body := strings.NewReader(`{"key_id":"merchant-1","key_secret":"s3cret"}`)
			req = httptest.NewRequest("POST", "/api/authenticate", body)
			req.Header.Set("Content-Type", "application/json")

			fakeTokens.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
			fakeTokens.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			bh.HandleAuthenticate(w, req)
		})

		When("the api key matches", func() {
			It("should return a signed token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["token"]).To(Equal("signed.token"))

				Expect(fakeTokens.GenerateCallCount()).To(Equal(1))
				info := fakeTokens.GenerateArgsForCall(0)
				Expect(info.KeyID).To(Equal("merchant-1"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeTokens.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the secret is wrong", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"key_id":"merchant-1","key_secret":"wrong"}`)
				req = httptest.NewRequest("POST", "/api/authenticate", body)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeTokens.GenerateCallCount()).To(Equal(0))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeTokens.SignReturns("", fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleBalance", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/balance", nil)
		})

		JustBeforeEach(func() {
			bh.HandleBalance(w, req)
		})

		When("the balance is available", func() {
			BeforeEach(func() {
				fakeService.BalanceReturns(json.RawMessage(`{"balance":123,"assetId":"abc"}`), nil)
			})

			It("should proxy the node payload", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"balance":123`))
				Expect(fakeService.BalanceCallCount()).To(Equal(1))
			})
		})

		When("the node is unavailable", func() {
			BeforeEach(func() {
				fakeService.BalanceReturns(nil, node.ErrNodeUnavailable)
			})

			It("should return 503 Service Unavailable", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.BalanceReturns(nil, fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleListTransactions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/listtransactions?invoice_id=inv-42", nil)
		})

		JustBeforeEach(func() {
			bh.HandleListTransactions(w, req)
		})

		When("deposits exist for the invoice", func() {
			BeforeEach(func() {
				fakeService.ListTransactionsReturns([]core.TransferRecord{
					{TxID: "tx-a", InvoiceID: "inv-42", Amount: 10},
					{TxID: "tx-b", InvoiceID: "inv-42", Amount: 20},
				}, nil)
			})

			It("should return the transactions", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string][]core.TransferRecord
				err := json.NewDecoder(w.Body).Decode(&response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["transactions"]).To(HaveLen(2))

				_, invoiceID := fakeService.ListTransactionsArgsForCall(0)
				Expect(invoiceID).To(Equal("inv-42"))
			})
		})

		When("no deposits match", func() {
			BeforeEach(func() {
				fakeService.ListTransactionsReturns([]core.TransferRecord{}, nil)
			})

			It("should return an empty list", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string][]core.TransferRecord
				err := json.NewDecoder(w.Body).Decode(&response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["transactions"]).To(BeEmpty())
			})
		})

		When("the invoice_id parameter is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/listtransactions", nil)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("invoice_id parameter is required"))
				Expect(fakeService.ListTransactionsCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ListTransactionsReturns(nil, fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleCreateTransaction", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"recipient":"3MTarget","amount":250000}`)
			req = httptest.NewRequest("POST", "/api/createtransaction", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			bh.HandleCreateTransaction(w, req)
		})

		When("the transfer is created", func() {
			BeforeEach(func() {
				fakeService.CreateTransactionReturns(core.TxStatus{
					TxID:  "tx-new",
					State: repository.StateCreated,
				}, nil)
			})

			It("should return the txid and created state", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var status core.TxStatus
				err := json.NewDecoder(w.Body).Decode(&status)
				Expect(err).NotTo(HaveOccurred())
				Expect(status.TxID).To(Equal("tx-new"))
				Expect(status.State).To(Equal(repository.StateCreated))

				_, recipient, amount, _ := fakeService.CreateTransactionArgsForCall(0)
				Expect(recipient).To(Equal("3MTarget"))
				Expect(amount).To(Equal(int64(250000)))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateTransactionCallCount()).To(Equal(0))
			})
		})

		When("the node is unavailable", func() {
			BeforeEach(func() {
				fakeService.CreateTransactionReturns(core.TxStatus{}, node.ErrNodeUnavailable)
			})

			It("should return 503 Service Unavailable", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.CreateTransactionReturns(core.TxStatus{}, fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleBroadcastTransaction", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"txid":"tx-out"}`)
			req = httptest.NewRequest("POST", "/api/broadcasttransaction", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			bh.HandleBroadcastTransaction(w, req)
		})

		When("the broadcast is accepted", func() {
			BeforeEach(func() {
				fakeService.BroadcastTransactionReturns(core.TxStatus{
					TxID:  "tx-out",
					State: repository.StateBroadcast,
				}, nil)
			})

			It("should return the broadcast state", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var status core.TxStatus
				err := json.NewDecoder(w.Body).Decode(&status)
				Expect(err).NotTo(HaveOccurred())
				Expect(status.State).To(Equal(repository.StateBroadcast))

				_, txid := fakeService.BroadcastTransactionArgsForCall(0)
				Expect(txid).To(Equal("tx-out"))
			})
		})

		When("the txid is unknown", func() {
			BeforeEach(func() {
				fakeService.BroadcastTransactionReturns(core.TxStatus{}, core.ErrTxNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the node rejects the broadcast", func() {
			BeforeEach(func() {
				fakeService.BroadcastTransactionReturns(
					core.TxStatus{TxID: "tx-out", State: repository.StateCreated},
					core.ErrBroadcastRejected)
			})

			It("should return 502 with the current state", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
				Expect(w.Body.String()).To(ContainSubstring(repository.StateCreated))
				Expect(w.Body.String()).To(ContainSubstring("tx-out"))
			})
		})

		When("the node retry budget is exhausted", func() {
			BeforeEach(func() {
				wrapped := errors.Join(core.ErrBroadcastRejected, node.ErrNodeUnavailable)
				fakeService.BroadcastTransactionReturns(
					core.TxStatus{TxID: "tx-out", State: repository.StateCreated},
					wrapped)
			})

			It("should report 503, not a rejection", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.BroadcastTransactionCallCount()).To(Equal(0))
			})
		})
	})
})
