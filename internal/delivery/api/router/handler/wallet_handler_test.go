package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servihub/internal/delivery/api/validator"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWallet implements the wallet calls the handler tests exercise.
type fakeWallet struct {
	usecase.WalletUsecase

	deposits []*usecase.DepositInput
	err      error
	payment  entity.PaymentStatus
}

func (f *fakeWallet) Deposit(_ context.Context, _ usecase.Actor, input *usecase.DepositInput) (*entity.WalletTransaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deposits = append(f.deposits, input)

	return &entity.WalletTransaction{TechnicianID: input.TechnicianID, Amount: input.Amount, BalanceAfter: input.Amount}, nil
}

func (f *fakeWallet) TopUp(_ context.Context, _ usecase.Actor, input *usecase.TopUpInput) (*usecase.TopUpOutput, error) {
	return &usecase.TopUpOutput{Payment: &entity.PaymentResult{ProviderPaymentID: "42", Status: f.payment}}, nil
}

func newWalletRequest(t *testing.T, body string, role entity.Role) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wallet", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		deliverycontext.SetIdentity(c, uuid.New(), role)
	}

	return c, rec
}

func responseError(t *testing.T, rec *httptest.ResponseRecorder) *domainerrors.ErrorInfo {
	t.Helper()

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestWalletHandler_Deposit(t *testing.T) {
	technicianID := uuid.New()

	tests := []struct {
		name        string
		body        string
		role        entity.Role
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:       "created",
			body:       `{"technician_id":"` + technicianID.String() + `","amount":5000,"reference":"cash-1"}`,
			role:       entity.RoleAdmin,
			wantStatus: http.StatusCreated,
		},
		{
			name:        "amount must be positive",
			body:        `{"technician_id":"` + technicianID.String() + `","amount":-5}`,
			role:        entity.RoleAdmin,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "amount failed on gt",
		},
		{
			name:        "technician id must be a uuid",
			body:        `{"technician_id":"abc","amount":5}`,
			role:        entity.RoleAdmin,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "technician_id failed on uuid",
		},
		{
			name:       "malformed json",
			body:       `{"amount":`,
			role:       entity.RoleAdmin,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "anonymous",
			body:       `{}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "wallet conflict",
			body:       `{"technician_id":"` + technicianID.String() + `","amount":5000}`,
			role:       entity.RoleAdmin,
			err:        domainerrors.ErrWalletConflict,
			wantStatus: http.StatusConflict,
			wantCode:   "WALLET_CONFLICT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallet := &fakeWallet{err: tt.err}
			h := NewWalletHandler(WalletHandlerParams{WalletUC: wallet})
			c, rec := newWalletRequest(t, tt.body, tt.role)

			require.NoError(t, h.Deposit(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				require.Len(t, wallet.deposits, 1)
				assert.Equal(t, technicianID, wallet.deposits[0].TechnicianID)
				assert.Equal(t, int64(5000), wallet.deposits[0].Amount)

				return
			}

			errInfo := responseError(t, rec)
			assert.Equal(t, tt.wantCode, errInfo.Code)
			if tt.wantDetails != "" {
				assert.Contains(t, errInfo.Details, tt.wantDetails)
			}
			assert.Empty(t, wallet.deposits)
		})
	}
}

func TestWalletHandler_TopUpPendingIsAccepted(t *testing.T) {
	body := `{"amount":2500,"card_token":"tok","payment_method_id":"visa","payer_email":"tech@example.com"}`

	for status, want := range map[entity.PaymentStatus]int{
		entity.PaymentPending:  http.StatusAccepted,
		entity.PaymentApproved: http.StatusOK,
	} {
		t.Run(string(status), func(t *testing.T) {
			h := NewWalletHandler(WalletHandlerParams{WalletUC: &fakeWallet{payment: status}})
			c, rec := newWalletRequest(t, body, entity.RoleTechnician)

			require.NoError(t, h.TopUp(c))

			assert.Equal(t, want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"provider_payment_id":"42"`)
		})
	}
}
