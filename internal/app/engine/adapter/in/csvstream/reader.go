package csvstream

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-payments-engine/internal/app/engine/domain"
	"github.com/JoeShih716/go-payments-engine/internal/app/engine/usecase"
)

// Reader 讀取 CSV 交易串流並依輸入順序逐筆送進核心
// 輸入順序是正確性的一部分，不可重排
type Reader struct {
	core      *usecase.EngineUseCase
	log       *zap.Logger
	malformed uint64
}

// NewReader 建立 CSV 讀取端
func NewReader(core *usecase.EngineUseCase, log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{
		core: core,
		log:  log,
	}
}

// Run 逐筆讀取並處理，直到 EOF
//
// 參數:
//
//	ctx: 上下文
//	r: CSV 來源，表頭為 type,client,tx,amount
//
// 回傳:
//
//	error: 僅在串流本身無法讀取時回傳；單筆錯誤一律記錄後繼續
func (rd *Reader) Run(ctx context.Context, r io.Reader) error {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// dispute/resolve/chargeback 的列可能沒有 amount 欄位
	cr.FieldsPerRecord = -1

	// 表頭
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("read csv header: %w", err)
	}

	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			rd.reject(line, err)
			continue
		}

		rec, err := parseRow(row)
		if err != nil {
			rd.reject(line, err)
			continue
		}

		// 拒絕已於核心記錄，這裡只管繼續下一筆
		_ = rd.core.Post(ctx, rec)
	}
	return nil
}

// Malformed 回傳尚未進到核心就被擋下的列數
func (rd *Reader) Malformed() uint64 {
	return rd.malformed
}

func (rd *Reader) reject(line int, cause error) {
	rd.malformed++
	rd.log.Warn("malformed csv row",
		zap.Int("line", line),
		zap.Error(cause),
	)
}

// parseRow 解析單列為 domain.Record，欄位允許大小寫與空白
func parseRow(row []string) (*domain.Record, error) {
	if len(row) < 3 {
		return nil, domain.ErrMalformedRecord
	}

	var txType domain.TransactionType
	switch strings.ToLower(strings.TrimSpace(row[0])) {
	case "deposit":
		txType = domain.TransactionTypeDeposit
	case "withdrawal":
		txType = domain.TransactionTypeWithdraw
	case "dispute":
		txType = domain.TransactionTypeDispute
	case "resolve":
		txType = domain.TransactionTypeResolve
	case "chargeback":
		txType = domain.TransactionTypeChargeback
	default:
		return nil, fmt.Errorf("%w: unknown type %q", domain.ErrMalformedRecord, row[0])
	}

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: client %q", domain.ErrMalformedRecord, row[1])
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: tx %q", domain.ErrMalformedRecord, row[2])
	}

	rec := &domain.Record{
		RefID:  uuid.New(),
		Tx:     domain.TxID(tx),
		Client: domain.ClientID(client),
		Type:   txType,
	}

	if len(row) > 3 {
		raw := strings.TrimSpace(row[3])
		if raw != "" {
			amount, err := domain.ParseAmount(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: amount %q", domain.ErrMalformedRecord, row[3])
			}
			rec.Amount = amount
			rec.HasAmount = true
		}
	}
	return rec, nil
}
