package handler

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"paybridge/internal/core"
	"paybridge/internal/http/handler/middleware"
	"paybridge/internal/http/payload"
	"paybridge/internal/node"
	tokenIssuer "paybridge/pkg/jwt"

	"go.uber.org/zap"
)

var (
	Authenticate         = "POST /api/authenticate"
	Balance              = "GET /api/balance"
	ListTransactions     = "GET /api/listtransactions"
	CreateTransaction    = "POST /api/createtransaction"
	BroadcastTransaction = "POST /api/broadcasttransaction"
)

type APIKey struct {
	ID     string
	Secret string
}

type BridgeHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	bridge           BridgeService
	tokens           TokenIssuer
	apiKey           APIKey
}

func NewBridgeHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, bridgeService BridgeService, tokens TokenIssuer, apiKey APIKey) *BridgeHandler {
	return &BridgeHandler{
		logs:             logger,
		requestValidator: requestValidator,
		bridge:           bridgeService,
		tokens:           tokens,
		apiKey:           apiKey,
	}
}

func (h *BridgeHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authReq payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &authReq)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	idOK := subtle.ConstantTimeCompare([]byte(authReq.KeyID), []byte(h.apiKey.ID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(authReq.KeySecret), []byte(h.apiKey.Secret)) == 1
	if !idOK || !secretOK {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   "unknown api key",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("authentication failed",
			"key_id", authReq.KeyID,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token := h.tokens.Generate(tokenIssuer.TokenInfo{
		KeyID:      authReq.KeyID,
		Subject:    authReq.KeyID,
		Expiration: 24,
	})
	signed, err := h.tokens.Sign(token)
	if err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("signing token",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": signed,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	balance, err := h.bridge.Balance(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve balance",
			Error:   fmt.Errorf("get balance: %w", err).Error(),
		}, statusFor(err),
			requestId)
		h.logs.Errorw("failed to get balance",
			"error", err,
			"handler", Balance,
			"request_id", requestId)
		return
	}

	h.respond(w, balance, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	invoiceID := r.URL.Query().Get("invoice_id")
	if invoiceID == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "invoice_id parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing invoice_id parameter",
			"handler", ListTransactions,
			"request_id", requestId)
		return
	}

	transactions, err := h.bridge.ListTransactions(r.Context(), invoiceID)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("list transactions: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list transactions",
			"error", err,
			"invoice_id", invoiceID,
			"handler", ListTransactions,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.TransferRecord{
		"transactions": transactions,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var createReq payload.CreateTransactionRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &createReq)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateTransaction,
			"request_id", requestId)
		return
	}

	status, err := h.bridge.CreateTransaction(r.Context(), createReq.Recipient, createReq.Amount, createReq.Attachment)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create transaction",
			Error:   fmt.Errorf("create transaction: %w", err).Error(),
		}, statusFor(err),
			requestId)
		h.logs.Errorw("failed to create transaction",
			"error", err,
			"recipient", createReq.Recipient,
			"handler", CreateTransaction,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transaction created",
		"txid", status.TxID,
		"handler", CreateTransaction,
		"request_id", requestId)
	h.respond(w, status, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleBroadcastTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var broadcastReq payload.BroadcastTransactionRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &broadcastReq)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not broadcast transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", BroadcastTransaction,
			"request_id", requestId)
		return
	}

	status, err := h.bridge.BroadcastTransaction(r.Context(), broadcastReq.TxID)
	if err != nil {
		resp := Response{
			Message: "Could not broadcast transaction",
			Error:   err.Error(),
			Data:    status,
		}
		h.respond(w, resp, statusFor(err), requestId)
		h.logs.Errorw("failed to broadcast transaction",
			"error", err,
			"txid", broadcastReq.TxID,
			"handler", BroadcastTransaction,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transaction broadcast",
		"txid", status.TxID,
		"handler", BroadcastTransaction,
		"request_id", requestId)
	h.respond(w, status, http.StatusOK, requestId)
}

func (h *BridgeHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// statusFor maps service errors onto distinct HTTP failure classes: unknown
// id, node rejection and an exhausted retry budget never look alike.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrTxNotFound):
		return http.StatusNotFound
	case errors.Is(err, node.ErrNodeUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, core.ErrBroadcastRejected):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
