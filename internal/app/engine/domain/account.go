package domain

// Account 單一客戶的帳戶餘額
// 不變量: Total = Available + Held，三者皆為精確的 4 位小數定點數
type Account struct {
	Available Amount
	Held      Amount
	Locked    bool
}

func NewAccount() *Account {
	return &Account{}
}

// Total 總額。即時計算而不另存欄位，不變量就不可能失真
func (a *Account) Total() Amount {
	return a.Available + a.Held
}

// Credit 存款入帳
func (a *Account) Credit(amount Amount) error {
	if a.Locked {
		return ErrAccountLocked
	}
	if amount < 0 {
		return ErrMalformedRecord
	}

	a.Available += amount
	return nil
}

// Debit 提款扣帳
func (a *Account) Debit(amount Amount) error {
	if a.Locked {
		return ErrAccountLocked
	}
	if amount < 0 {
		return ErrMalformedRecord
	}
	if a.Available < amount {
		return ErrInsufficientFunds
	}

	a.Available -= amount
	return nil
}

// Hold 爭議凍結：可用轉保留，總額不變
func (a *Account) Hold(amount Amount) {
	a.Available -= amount
	a.Held += amount
}

// Release 爭議解除：保留轉回可用，總額不變
func (a *Account) Release(amount Amount) {
	a.Held -= amount
	a.Available += amount
}

// CaptureAndLock 拒付沒收：保留金額移出系統，帳戶永久鎖定
func (a *Account) CaptureAndLock(amount Amount) {
	a.Held -= amount
	a.Locked = true
}
