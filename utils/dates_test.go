package utils

import (
	"testing"
	"time"
)

func TestValidatePreferredDate(t *testing.T) {
	if err := ValidatePreferredDate(time.Now().Add(24 * time.Hour)); err != nil {
		t.Errorf("future date rejected: %v", err)
	}
	if err := ValidatePreferredDate(time.Now().Add(-time.Hour)); err != ErrDateInPast {
		t.Errorf("past date error = %v, want ErrDateInPast", err)
	}
}

func TestCombineDateSlot(t *testing.T) {
	day := time.Date(2026, 9, 14, 13, 45, 0, 0, time.Local)

	tests := []struct {
		slot     string
		wantHour int
	}{
		{SlotMorning, 9},
		{SlotAfternoon, 14},
		{SlotEvening, 17},
	}
	for _, tt := range tests {
		got, err := CombineDateSlot(day, tt.slot)
		if err != nil {
			t.Fatalf("CombineDateSlot(%s) error: %v", tt.slot, err)
		}
		if got.Hour() != tt.wantHour || got.Minute() != 0 {
			t.Errorf("CombineDateSlot(%s) = %v, want hour %d on the hour", tt.slot, got, tt.wantHour)
		}
		if got.Year() != 2026 || got.Month() != time.September || got.Day() != 14 {
			t.Errorf("CombineDateSlot(%s) moved the date: %v", tt.slot, got)
		}
	}

	if _, err := CombineDateSlot(day, "midnight"); err == nil {
		t.Error("unknown slot accepted")
	}
}
