package domain

// DisputeState 存款交易的爭議狀態
// 用 uint8 枚舉而非 bool，讓每個轉移點都被迫窮舉所有狀態
type DisputeState uint8

const (
	// 已入帳，可以發起爭議
	DisputeStatePosted DisputeState = 1
	// 爭議中，金額已凍結
	DisputeStateDisputed DisputeState = 2
	// 已拒付 (終態)，不允許任何後續轉移
	DisputeStateChargedBack DisputeState = 3
)

// String ...
func (s DisputeState) String() string {
	switch s {
	case DisputeStatePosted:
		return "posted"
	case DisputeStateDisputed:
		return "disputed"
	case DisputeStateChargedBack:
		return "charged_back"
	default:
		return "unknown"
	}
}

// Deposit 已成功入帳的存款，爭議生命週期的唯一對象
// 只記 Client 編號，不持有 Account 指標，避免兩個 store 之間的循環引用
type Deposit struct {
	Amount Amount
	Tx     TxID
	Client ClientID
	State  DisputeState
}

// BeginDispute 狀態轉移 Posted -> Disputed
func (d *Deposit) BeginDispute() error {
	switch d.State {
	case DisputeStatePosted:
		d.State = DisputeStateDisputed
		return nil
	case DisputeStateDisputed, DisputeStateChargedBack:
		return ErrInvalidState
	default:
		return ErrInvalidState
	}
}

// Resolve 狀態轉移 Disputed -> Posted
// 回到 Posted 之後可以再次發起爭議，次數不限
func (d *Deposit) Resolve() error {
	switch d.State {
	case DisputeStateDisputed:
		d.State = DisputeStatePosted
		return nil
	case DisputeStatePosted, DisputeStateChargedBack:
		return ErrInvalidState
	default:
		return ErrInvalidState
	}
}

// Chargeback 狀態轉移 Disputed -> ChargedBack (終態)
func (d *Deposit) Chargeback() error {
	switch d.State {
	case DisputeStateDisputed:
		d.State = DisputeStateChargedBack
		return nil
	case DisputeStatePosted, DisputeStateChargedBack:
		return ErrInvalidState
	default:
		return ErrInvalidState
	}
}
