package csvreport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/JoeShih716/go-payments-engine/internal/app/engine/domain"
)

// Write 將帳戶快照輸出為 CSV
// 快照是無序 Map，輸出列順序不保證；比對結果時應以 client 為鍵
func Write(out io.Writer, accounts map[domain.ClientID]domain.Account) error {
	cw := csv.NewWriter(out)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	for client, acct := range accounts {
		row := []string{
			strconv.FormatUint(uint64(client), 10),
			acct.Available.String(),
			acct.Held.String(),
			acct.Total().String(),
			strconv.FormatBool(acct.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write account row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
