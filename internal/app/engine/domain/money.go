package domain

import (
	"github.com/shopspring/decimal"
)

// amount 使用 int64，並定義精度：小數點後 4 位
const (
	CurrencyScale = 10000
	currencyExp   = 4
)

// Amount 定點數金額，以 1/10000 為最小單位
// 所有運算都留在整數域，避免二進位浮點數的誤差
type Amount int64

// ParseAmount 解析十進位字串為定點金額
// 負數或超過 4 位小數一律拒絕，不做隱性捨入
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrMalformedRecord
	}
	if d.IsNegative() {
		return 0, ErrMalformedRecord
	}
	scaled := d.Shift(currencyExp)
	if !scaled.IsInteger() {
		return 0, ErrMalformedRecord
	}
	if !scaled.BigInt().IsInt64() {
		return 0, ErrMalformedRecord
	}
	return Amount(scaled.IntPart()), nil
}

// String 輸出固定 4 位小數的十進位字串 (如 1.5000)
func (a Amount) String() string {
	return decimal.New(int64(a), -currencyExp).StringFixed(currencyExp)
}
