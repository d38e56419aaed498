package usecase

import (
	"context"

	"github.com/JoeShih716/go-payments-engine/internal/app/engine/domain"
)

// Ledger 是結算引擎的介面
type Ledger interface {
	// Post 依輸入順序處理單筆交易紀錄；拒絕以 error 回報，不中斷整批
	Post(ctx context.Context, rec *domain.Record) error
	// Snapshot 取得所有帳戶的最終快照
	Snapshot(ctx context.Context) (map[domain.ClientID]domain.Account, error)
	// Report 取得本次執行的處理結果統計
	Report(ctx context.Context) (*domain.Report, error)
}
