package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"mecanica_parts/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func snapshotFixture() (entities.FinalizedEntry, []entities.FinalizedLine) {
	entry := entities.FinalizedEntry{
		ID:          "entry-1",
		OrderID:     "id-1",
		OrderNumber: "OS-100",
		FinalizedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	lines := []entities.FinalizedLine{
		{EntryID: "entry-1", Barcode: "111", Quantity: 2},
		{EntryID: "entry-1", Barcode: "222", Quantity: 1},
	}
	return entry, lines
}

func TestWriteCSV(t *testing.T) {
	entry, lines := snapshotFixture()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entry, lines); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"order_number,barcode,quantity",
		"OS-100,111,2",
		"OS-100,222,1",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if strings.TrimRight(got[i], "\r") != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestWriteXLSX(t *testing.T) {
	entry, lines := snapshotFixture()

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, entry, lines); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 lines, got %d rows", len(rows))
	}
	if rows[0][0] != "order_number" || rows[0][1] != "barcode" || rows[0][2] != "quantity" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "OS-100" || rows[1][1] != "111" || rows[1][2] != "2" {
		t.Fatalf("unexpected first line: %v", rows[1])
	}
	if rows[2][1] != "222" || rows[2][2] != "1" {
		t.Fatalf("unexpected second line: %v", rows[2])
	}
}

func TestWriteCSV_EmptySnapshot(t *testing.T) {
	entry, _ := snapshotFixture()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entry, nil); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "order_number,barcode,quantity" {
		t.Fatalf("expected header only, got %q", buf.String())
	}
}
