package domain

// Report 單次執行的逐筆處理結果統計
// 每一筆拒絕都照錯誤原因累計，整批執行不會因單筆錯誤中斷
type Report struct {
	// Processed: 成功套用的紀錄數
	Processed uint64
	// Rejected: 被拒絕的紀錄數
	Rejected uint64
	// Reasons: 各拒絕原因的累計次數
	Reasons map[string]uint64
}

func NewReport() *Report {
	return &Report{
		Reasons: make(map[string]uint64),
	}
}

// Observe 累計單筆處理結果
func (r *Report) Observe(err error) {
	if err == nil {
		r.Processed++
		return
	}
	r.Rejected++
	r.Reasons[err.Error()]++
}

// Clone 複製一份統計快照，讓呼叫端拿到的資料與引擎內部狀態脫鉤
func (r *Report) Clone() *Report {
	out := NewReport()
	out.Processed = r.Processed
	out.Rejected = r.Rejected
	for reason, n := range r.Reasons {
		out.Reasons[reason] = n
	}
	return out
}
