package usecase

import (
	"context"

	"github.com/JoeShih716/go-payments-engine/internal/app/engine/domain"
)

// EngineUseCase 是核心業務邏輯層
type EngineUseCase struct {
	ledger Ledger
}

func NewEngineUseCase(ledger Ledger) *EngineUseCase {
	return &EngineUseCase{
		ledger: ledger,
	}
}

// Post 處理交易紀錄
func (e *EngineUseCase) Post(ctx context.Context, rec *domain.Record) error {
	return e.ledger.Post(ctx, rec)
}

// Snapshot 取得所有帳戶快照
func (e *EngineUseCase) Snapshot(ctx context.Context) (map[domain.ClientID]domain.Account, error) {
	return e.ledger.Snapshot(ctx)
}

// Report 取得處理結果統計
func (e *EngineUseCase) Report(ctx context.Context) (*domain.Report, error) {
	return e.ledger.Report(ctx)
}
