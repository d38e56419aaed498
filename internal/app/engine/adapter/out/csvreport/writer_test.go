package csvreport

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-payments-engine/internal/app/engine/domain"
)

// 快照是無序 Map，輸出列順序不保證，比對一律以 client 為鍵
func readRows(t *testing.T, raw []byte) map[string][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"client", "available", "held", "total", "locked"}, records[0])

	rows := make(map[string][]string, len(records)-1)
	for _, row := range records[1:] {
		require.Len(t, row, 5)
		rows[row[0]] = row[1:]
	}
	return rows
}

func TestWrite(t *testing.T) {
	accounts := map[domain.ClientID]domain.Account{
		1: {Available: 15000, Held: 0, Locked: false},
		2: {Available: 0, Held: 50000, Locked: false},
		3: {Available: 0, Held: 0, Locked: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, accounts))

	rows := readRows(t, buf.Bytes())
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1.5000", "0.0000", "1.5000", "false"}, rows["1"])
	assert.Equal(t, []string{"0.0000", "5.0000", "5.0000", "false"}, rows["2"])
	assert.Equal(t, []string{"0.0000", "0.0000", "0.0000", "true"}, rows["3"])
}

func TestWriteEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	rows := readRows(t, buf.Bytes())
	assert.Empty(t, rows)
}

func TestWriteFourDecimalPlaces(t *testing.T) {
	accounts := map[domain.ClientID]domain.Account{
		9: {Available: 12345, Held: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, accounts))

	rows := readRows(t, buf.Bytes())
	assert.Equal(t, []string{"1.2345", "0.0001", "1.2346", "false"}, rows["9"])
}
