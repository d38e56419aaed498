package journal

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"sync"
)

// 自己定義常用的權限常量
const (
	// rw-r--r-- (擁有者讀寫，其他人唯讀) - 適用於大多數檔案
	FileModeReadOnly fs.FileMode = 0644
)

// Config 拒絕紀錄 Journal 設定
type Config struct {
	// Path: 輸出檔案路徑，空字串表示停用
	Path string `yaml:"path"`
}

// Journal 追加式的 JSON Lines 診斷檔
// 記錄被拒絕的交易供事後排查，不是帳務狀態的持久化
type Journal struct {
	file *os.File
	mu   sync.Mutex
}

// New 開啟或建立一個 Journal 檔案
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func New(path string) (*Journal, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModeReadOnly)
	if err != nil {
		return nil, err
	}
	return &Journal{
		file: file,
		mu:   sync.Mutex{},
	}, nil
}

// Write 寫入一筆資料
func (j *Journal) Write(v any) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return json.NewEncoder(j.file).Encode(v)
}

// Sync 強制刷入硬碟
func (j *Journal) Sync() error {
	return j.file.Sync()
}

// Close 刷入並關閉檔案
func (j *Journal) Close() error {
	if err := j.file.Sync(); err != nil {
		return err
	}
	return j.file.Close()
}

// ReadAll 讀取所有資料
// callback 是一個函式，接收一個 json.RawMessage
// 這樣可以避免一次將所有資料載入記憶體
func (j *Journal) ReadAll(callback func(jsonRaw []byte) error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	// 確保從頭讀取
	if _, err := j.file.Seek(0, 0); err != nil {
		return err
	}

	decoder := json.NewDecoder(j.file)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if err := callback(raw); err != nil {
			return err
		}
	}
	return nil
}
