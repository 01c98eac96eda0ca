package core

import (
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-08-15")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.August || d.Day() != 15 {
		t.Fatalf("unexpected date %v", d)
	}
	if d.String() != "2025-08-15" {
		t.Fatalf("expected round-trip string, got %q", d.String())
	}
	if d.MonthKey() != "2025-08" {
		t.Fatalf("expected month key 2025-08, got %q", d.MonthKey())
	}
	if _, err := ParseDate("15/08/2025"); err == nil {
		t.Fatalf("expected error for non-ISO form")
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Type:     Expense,
		Category: "อาหาร",
		Name:     "กาแฟ",
		Amount:   Money{Cents: 7500},
		Date:     NewDate(2025, 8, 13),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Type: "transfer", Category: "c", Name: "a", Amount: Money{Cents: 1}, Date: NewDate(2025, 1, 1)},
		{Type: Expense, Category: "c", Name: "a", Amount: Money{Cents: 1}},
		{Type: Expense, Category: "c", Name: "", Amount: Money{Cents: 1}, Date: NewDate(2025, 1, 1)},
		{Type: Expense, Category: "c", Name: "a", Amount: Money{Cents: 0}, Date: NewDate(2025, 1, 1)},
		{Type: Expense, Category: "", Name: "a", Amount: Money{Cents: 1}, Date: NewDate(2025, 1, 1)},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
