package usecase

import (
	"context"

	"servihub/internal/domain/entity"
)

// PushResult summarises the pushes sent for one row change.
type PushResult struct {
	Recipients    int `json:"recipients"`
	Sent          int `json:"sent"`
	Failed        int `json:"failed"`
	InvalidTokens int `json:"invalid_tokens"`
}

// NotifierUsecase turns committed row changes into push notifications.
type NotifierUsecase interface {
	// HandleChange notifies the participants of the changed row. Changes that concern nobody are ignored.
	HandleChange(ctx context.Context, change *entity.RowChange) (*PushResult, error)
}
