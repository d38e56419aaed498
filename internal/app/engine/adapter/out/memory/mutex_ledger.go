package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/JoeShih716/go-payments-engine/internal/app/engine/domain"
	"github.com/JoeShih716/go-payments-engine/internal/app/engine/usecase"
	"github.com/JoeShih716/go-payments-engine/pkg/journal"
)

// rejection 寫入 journal 的拒絕紀錄
type rejection struct {
	RefID  string `json:"ref_id"`
	Type   string `json:"type"`
	Client uint16 `json:"client"`
	Tx     uint32 `json:"tx"`
	Reason string `json:"reason"`
}

// MutexLedger 是一個使用 Mutex 實現的結算引擎
//
// 結構:
//
//	accounts: 客戶帳戶 Map
//	deposits: 可被爭議引用的存款交易 Map (只收 deposit，永不刪除)
//	mu: Mutex 用於保護兩個 Map
//	report: 逐筆處理結果統計
//	journal: 拒絕紀錄的診斷輸出 (可為 nil)
type MutexLedger struct {
	accounts map[domain.ClientID]*domain.Account
	deposits map[domain.TxID]*domain.Deposit
	mu       sync.RWMutex
	report   *domain.Report
	journal  *journal.Journal
	log      *zap.Logger
}

// NewMutexLedger 建立一個新的 MutexLedger 實例
//
// 參數:
//
//	log: 結構化 Logger (nil 時使用 Nop)
//	jnl: 拒絕紀錄 Journal (nil 時不輸出)
//
// 回傳:
//
//	*MutexLedger: MutexLedger 實例
func NewMutexLedger(log *zap.Logger, jnl *journal.Journal) *MutexLedger {
	if log == nil {
		log = zap.NewNop()
	}
	return &MutexLedger{
		accounts: make(map[domain.ClientID]*domain.Account),
		deposits: make(map[domain.TxID]*domain.Deposit),
		mu:       sync.RWMutex{},
		report:   domain.NewReport(),
		journal:  jnl,
		log:      log,
	}
}

// Post 處理單筆交易紀錄
//
// 參數:
//
//	ctx: 上下文
//	rec: 交易紀錄
//
// 回傳:
//
//	error: 拒絕原因；拒絕不代表整批失敗，呼叫端應繼續處理下一筆
func (m *MutexLedger) Post(ctx context.Context, rec *domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.postInternal(rec)
	m.report.Observe(err)
	if err != nil {
		m.recordRejection(rec, err)
	}
	return err
}

// postInternal 執行交易核心邏輯 (內部方法，呼叫端已持有鎖)
func (m *MutexLedger) postInternal(rec *domain.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	// 1. 鎖定帳戶一律拒絕，所有交易類型適用
	if acct, ok := m.accounts[rec.Client]; ok && acct.Locked {
		return domain.ErrAccountLocked
	}

	// 2. 核心交易分發
	switch rec.Type {
	case domain.TransactionTypeDeposit:
		return m.handleDeposit(rec)
	case domain.TransactionTypeWithdraw:
		return m.handleWithdraw(rec)
	case domain.TransactionTypeDispute:
		return m.handleDispute(rec)
	case domain.TransactionTypeResolve:
		return m.handleResolve(rec)
	case domain.TransactionTypeChargeback:
		return m.handleChargeback(rec)
	default:
		return domain.ErrMalformedRecord
	}
}

// handleDeposit 處理存款邏輯
// 交易編號重複時整筆拒絕，餘額與帳戶都不動
func (m *MutexLedger) handleDeposit(rec *domain.Record) error {
	if _, ok := m.deposits[rec.Tx]; ok {
		return domain.ErrDuplicateTransaction
	}

	acct := m.getOrCreateAccount(rec.Client)
	if err := acct.Credit(rec.Amount); err != nil {
		return err
	}

	// 只有 deposit 會被記進歷史，withdrawal 不可被爭議
	m.deposits[rec.Tx] = &domain.Deposit{
		Amount: rec.Amount,
		Tx:     rec.Tx,
		Client: rec.Client,
		State:  domain.DisputeStatePosted,
	}
	return nil
}

// handleWithdraw 處理提款邏輯
// 帳戶只在成功的存提款時建立，失敗的提款不留痕跡
func (m *MutexLedger) handleWithdraw(rec *domain.Record) error {
	acct, ok := m.accounts[rec.Client]
	if !ok {
		if rec.Amount > 0 {
			return domain.ErrInsufficientFunds
		}
		acct = m.getOrCreateAccount(rec.Client)
	}
	return acct.Debit(rec.Amount)
}

// handleDispute 處理爭議邏輯
// 凍結套用在存款擁有者的帳戶，而非紀錄上宣稱的帳戶，防止跨客戶偽造
func (m *MutexLedger) handleDispute(rec *domain.Record) error {
	dep, err := m.referencedDeposit(rec)
	if err != nil {
		return err
	}
	if err := dep.BeginDispute(); err != nil {
		return err
	}
	m.accounts[dep.Client].Hold(dep.Amount)
	return nil
}

// handleResolve 處理爭議解除邏輯
func (m *MutexLedger) handleResolve(rec *domain.Record) error {
	dep, err := m.referencedDeposit(rec)
	if err != nil {
		return err
	}
	if err := dep.Resolve(); err != nil {
		return err
	}
	m.accounts[dep.Client].Release(dep.Amount)
	return nil
}

// handleChargeback 處理拒付邏輯
// 成功後存款進入終態，擁有者帳戶鎖定，之後任何紀錄都會被拒絕
func (m *MutexLedger) handleChargeback(rec *domain.Record) error {
	dep, err := m.referencedDeposit(rec)
	if err != nil {
		return err
	}
	if err := dep.Chargeback(); err != nil {
		return err
	}
	m.accounts[dep.Client].CaptureAndLock(dep.Amount)
	return nil
}

// referencedDeposit 解析爭議類紀錄引用的存款，並驗證擁有權
func (m *MutexLedger) referencedDeposit(rec *domain.Record) (*domain.Deposit, error) {
	dep, ok := m.deposits[rec.Tx]
	if !ok {
		return nil, domain.ErrUnknownTransaction
	}
	if dep.Client != rec.Client {
		return nil, domain.ErrClientMismatch
	}
	return dep, nil
}

// getOrCreateAccount 取得帳戶，不存在時以零餘額建立，永不失敗
func (m *MutexLedger) getOrCreateAccount(client domain.ClientID) *domain.Account {
	acct, ok := m.accounts[client]
	if !ok {
		acct = domain.NewAccount()
		m.accounts[client] = acct
	}
	return acct
}

// recordRejection 記錄單筆拒絕 (log + journal)，本身的失敗不影響處理流程
func (m *MutexLedger) recordRejection(rec *domain.Record, cause error) {
	m.log.Warn("record rejected",
		zap.String("ref_id", rec.RefID.String()),
		zap.Stringer("type", rec.Type),
		zap.Uint16("client", uint16(rec.Client)),
		zap.Uint32("tx", uint32(rec.Tx)),
		zap.Error(cause),
	)

	if m.journal == nil {
		return
	}
	entry := rejection{
		RefID:  rec.RefID.String(),
		Type:   rec.Type.String(),
		Client: uint16(rec.Client),
		Tx:     uint32(rec.Tx),
		Reason: cause.Error(),
	}
	if err := m.journal.Write(entry); err != nil {
		m.log.Error("write rejection journal", zap.Error(err))
	}
}

// Snapshot 取得所有帳戶的最終快照
//
// 參數:
//
//	ctx: 上下文
//
// 回傳:
//
//	map[domain.ClientID]domain.Account: 帳戶快照 (值複製，與引擎內部狀態脫鉤)
//	error: 查詢錯誤
func (m *MutexLedger) Snapshot(ctx context.Context) (map[domain.ClientID]domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[domain.ClientID]domain.Account, len(m.accounts))
	for client, acct := range m.accounts {
		out[client] = *acct
	}
	return out, nil
}

// Report 取得本次執行的處理結果統計
//
// 參數:
//
//	ctx: 上下文
//
// 回傳:
//
//	*domain.Report: 統計快照
//	error: 查詢錯誤
func (m *MutexLedger) Report(ctx context.Context) (*domain.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.report.Clone(), nil
}

var _ usecase.Ledger = (*MutexLedger)(nil)
