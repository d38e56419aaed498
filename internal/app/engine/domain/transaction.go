package domain

import "github.com/google/uuid"

// ClientID 客戶編號
// 輸入格式的上限是 65535，用 uint16 節省記憶體
type ClientID uint16

// TxID 交易編號，在 deposit/withdrawal 之間全域唯一
type TxID uint32

// TransactionType 交易類型
// 為了極致節省記憶體，使用 uint8
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
	// 爭議：凍結對應的存款金額
	TransactionTypeDispute TransactionType = 3
	// 爭議解除：解凍回可用餘額
	TransactionTypeResolve TransactionType = 4
	// 拒付：沒收凍結金額並鎖定帳戶
	TransactionTypeChargeback TransactionType = 5
)

// String 回傳輸入格式使用的小寫名稱
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	case TransactionTypeWithdraw:
		return "withdrawal"
	case TransactionTypeDispute:
		return "dispute"
	case TransactionTypeResolve:
		return "resolve"
	case TransactionTypeChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Record 單筆輸入交易紀錄 注意欄位排序以避免 Padding
type Record struct {
	// RefID: 外部追蹤號 (UUID)，由讀取端指派，用於 log/journal 關聯
	RefID uuid.UUID
	// Amount: 金額，僅 deposit/withdrawal 有值
	Amount Amount
	// Tx: 交易編號
	Tx TxID
	// Client: 客戶編號
	Client ClientID
	// Type: 交易類型
	Type TransactionType
	// HasAmount: 輸入是否帶有 amount 欄位
	HasAmount bool
}

// Validate 在分發前檢查紀錄結構是否合法
// deposit/withdrawal 必須帶非負金額；其餘類型不需要金額
func (r *Record) Validate() error {
	switch r.Type {
	case TransactionTypeDeposit, TransactionTypeWithdraw:
		if !r.HasAmount {
			return ErrMalformedRecord
		}
		if r.Amount < 0 {
			return ErrMalformedRecord
		}
		return nil
	case TransactionTypeDispute, TransactionTypeResolve, TransactionTypeChargeback:
		return nil
	default:
		return ErrMalformedRecord
	}
}
