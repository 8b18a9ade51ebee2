package handler

import (
	"net/http"

	"servihub/internal/delivery/api/response"
	"servihub/internal/domain/entity"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	WalletUC     usecase.WalletUsecase
	FinancialsUC usecase.FinancialsUsecase
}

// WalletHandler serves technician wallets and the admin financial views.
type WalletHandler struct {
	walletUC     usecase.WalletUsecase
	financialsUC usecase.FinancialsUsecase
}

// NewWalletHandler is the constructor for WalletHandler.
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{
		walletUC:     params.WalletUC,
		financialsUC: params.FinancialsUC,
	}
}

// DepositRequest is an admin credit to a technician wallet.
type DepositRequest struct {
	TechnicianID string `json:"technician_id" validate:"required,uuid"`
	Amount       int64  `json:"amount" validate:"required,gt=0"`
	Reference    string `json:"reference" validate:"max=120"`
}

// TopUpRequest is a card payment made by a technician.
type TopUpRequest struct {
	Amount          int64  `json:"amount" validate:"required,gt=0"`
	CardToken       string `json:"card_token" validate:"required"`
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
	Installments    int    `json:"installments" validate:"omitempty,gte=1,lte=12"`
	PayerEmail      string `json:"payer_email" validate:"required,email"`
}

// technicianParam resolves the wallet owner: the path id when present, else the caller.
func technicianParam(c echo.Context, a usecase.Actor) (uuid.UUID, error) {
	if c.Param("id") == "" {
		return a.ID, nil
	}

	return pathID(c, "id")
}

// GetWallet returns a wallet with its recent entries.
func (h *WalletHandler) GetWallet(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	technicianID, err := technicianParam(c, a)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	wallet, err := h.walletUC.GetWallet(c.Request().Context(), a, technicianID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, wallet)
}

// ListTransactions returns the ledger of a wallet.
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	technicianID, err := technicianParam(c, a)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	transactions, err := h.walletUC.ListTransactions(c.Request().Context(), a, technicianID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, transactions)
}

// Deposit credits a technician wallet.
func (h *WalletHandler) Deposit(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req DepositRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	transaction, err := h.walletUC.Deposit(c.Request().Context(), a, &usecase.DepositInput{
		TechnicianID: uuid.MustParse(req.TechnicianID),
		Amount:       req.Amount,
		Reference:    req.Reference,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, transaction)
}

// TopUp charges a card and funds the caller's wallet.
func (h *WalletHandler) TopUp(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req TopUpRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.walletUC.TopUp(c.Request().Context(), a, &usecase.TopUpInput{
		Amount:          req.Amount,
		CardToken:       req.CardToken,
		PaymentMethodID: req.PaymentMethodID,
		Installments:    req.Installments,
		PayerEmail:      req.PayerEmail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if output.Payment != nil && output.Payment.Status == entity.PaymentPending {
		return response.Success(c, http.StatusAccepted, output)
	}

	return response.OK(c, output)
}

// ListPendingPayments returns technicians below the minimum balance.
func (h *WalletHandler) ListPendingPayments(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	pending, err := h.walletUC.ListPendingPayments(c.Request().Context(), a)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, pending)
}

// FinancialSummary returns the platform money flows.
func (h *WalletHandler) FinancialSummary(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.financialsUC.Summary(c.Request().Context(), a)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, summary)
}
