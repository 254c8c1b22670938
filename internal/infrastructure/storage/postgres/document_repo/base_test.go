package document_repo

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	day := time.Date(2026, 3, 14, 15, 30, 45, 0, time.UTC)

	sql, args, err := sameDay("date", day).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	want := "(date >= ? AND date < ?)"
	if sql != want {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", want, sql)
	}

	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}

	start := args[0].(time.Time)
	end := args[1].(time.Time)

	if !start.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start should be midnight of the same day, got %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end should be midnight of the next day, got %v", end)
	}
}
