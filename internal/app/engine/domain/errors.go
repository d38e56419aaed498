package domain

import "errors"

var (
	// ErrAccountLocked 帳戶已鎖定，拒絕任何後續交易
	ErrAccountLocked = errors.New("account is locked")

	// ErrDuplicateTransaction 存款交易編號重複
	ErrDuplicateTransaction = errors.New("transaction id already exists")

	// ErrInsufficientFunds 可用餘額不足
	ErrInsufficientFunds = errors.New("insufficient available funds")

	// ErrUnknownTransaction 找不到對應的存款交易
	ErrUnknownTransaction = errors.New("no such deposit transaction")

	// ErrClientMismatch 交易屬於另一個客戶
	ErrClientMismatch = errors.New("transaction belongs to another client")

	// ErrInvalidState 當前爭議狀態不允許此操作
	ErrInvalidState = errors.New("dispute state does not permit operation")

	// ErrMalformedRecord 紀錄結構不合法 (負數金額、缺欄位)
	ErrMalformedRecord = errors.New("malformed record")
)
