package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountCreditDebit(t *testing.T) {
	acct := NewAccount()

	require.NoError(t, acct.Credit(1205500))
	require.NoError(t, acct.Credit(1306600))
	assert.Equal(t, Amount(2512100), acct.Available)
	assert.Equal(t, Amount(0), acct.Held)
	assert.Equal(t, Amount(2512100), acct.Total())

	require.NoError(t, acct.Debit(1286800))
	assert.Equal(t, Amount(1225300), acct.Available)
	assert.Equal(t, Amount(1225300), acct.Total())
	assert.False(t, acct.Locked)
}

func TestAccountDebitInsufficient(t *testing.T) {
	acct := NewAccount()
	require.NoError(t, acct.Credit(2000000))

	err := acct.Debit(2001000)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	// 失敗不留任何變動
	assert.Equal(t, Amount(2000000), acct.Available)
}

func TestAccountNegativeAmount(t *testing.T) {
	acct := NewAccount()
	require.ErrorIs(t, acct.Credit(-1), ErrMalformedRecord)
	require.ErrorIs(t, acct.Debit(-1), ErrMalformedRecord)
}

func TestAccountHoldRelease(t *testing.T) {
	acct := NewAccount()
	require.NoError(t, acct.Credit(2000000))

	acct.Hold(1000000)
	assert.Equal(t, Amount(1000000), acct.Available)
	assert.Equal(t, Amount(1000000), acct.Held)
	assert.Equal(t, Amount(2000000), acct.Total())

	acct.Release(1000000)
	assert.Equal(t, Amount(2000000), acct.Available)
	assert.Equal(t, Amount(0), acct.Held)
	assert.Equal(t, Amount(2000000), acct.Total())
}

func TestAccountCaptureAndLock(t *testing.T) {
	acct := NewAccount()
	require.NoError(t, acct.Credit(2000000))
	acct.Hold(500000)

	acct.CaptureAndLock(500000)
	assert.Equal(t, Amount(1500000), acct.Available)
	assert.Equal(t, Amount(0), acct.Held)
	assert.Equal(t, Amount(1500000), acct.Total())
	assert.True(t, acct.Locked)
}

func TestAccountLockedRejects(t *testing.T) {
	acct := &Account{Locked: true}

	require.ErrorIs(t, acct.Credit(100), ErrAccountLocked)
	require.ErrorIs(t, acct.Debit(100), ErrAccountLocked)
}
