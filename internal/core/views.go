package core

import (
	"sort"
	"strings"
)

// Derived views are pure functions of a transaction list. None of them
// mutate their input; all are safe to recompute on every read.

const (
	FilterAll     TypeFilter = "all"
	FilterIncome  TypeFilter = "income"
	FilterExpense TypeFilter = "expense"
)

type (
	TypeFilter string

	// Totals holds the income and expense sums for a list.
	Totals struct {
		Income  Money
		Expense Money
	}

	// CategoryAmount is an expense sum aggregated by category name.
	CategoryAmount struct {
		Name   string
		Icon   IconKey
		Amount Money
	}

	// MonthSummary holds income and expense sums for one calendar
	// year-month ("2006-01").
	MonthSummary struct {
		Key     string
		Income  Money
		Expense Money
	}

	// DayGroup is the slice of transactions sharing one calendar date.
	DayGroup struct {
		Date         Date
		Transactions []Transaction
	}
)

// SortByDateDesc orders transactions descending by date in place.
// The sort is stable: same-date transactions keep their prior order.
func SortByDateDesc(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date.Time)
	})
}

// ComputeTotals sums income and expense over the list.
func ComputeTotals(txs []Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case Income:
			t.Income.Cents += tx.Amount.Cents
		case Expense:
			t.Expense.Cents += tx.Amount.Cents
		}
	}
	return t
}

// Balance returns income minus expense.
func (t Totals) Balance() Money {
	return Money{Cents: t.Income.Cents - t.Expense.Cents}
}

// IncomeShare returns income as a fraction of total volume in [0, 1].
// It returns 0 when there is no volume at all, never NaN.
func (t Totals) IncomeShare() float64 {
	volume := t.Income.Cents + t.Expense.Cents
	if volume == 0 {
		return 0
	}
	return float64(t.Income.Cents) / float64(volume)
}

// AverageDailySpend divides the expense total by the number of calendar
// days from the earliest transaction date through today, inclusive.
// The divisor is never less than one day; with no transactions the
// result is zero.
func AverageDailySpend(txs []Transaction, today Date) Money {
	if len(txs) == 0 {
		return Money{}
	}
	earliest := txs[0].Date
	var expense int64
	for _, tx := range txs {
		if tx.Date.Before(earliest.Time) {
			earliest = tx.Date
		}
		if tx.Type == Expense {
			expense += tx.Amount.Cents
		}
	}
	days := int64(today.Sub(earliest.Time).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return Money{Cents: expense / days}
}

// ExpensesByCategory groups expense transactions by category name and
// sums the amounts per group, ordered descending by sum. Income is
// excluded. Groups with equal sums keep first-seen order.
func ExpensesByCategory(txs []Transaction) []CategoryAmount {
	sums := make(map[string]int64)
	var order []string
	for _, tx := range txs {
		if tx.Type != Expense {
			continue
		}
		if _, seen := sums[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		sums[tx.Category] += tx.Amount.Cents
	}
	out := make([]CategoryAmount, 0, len(order))
	for _, name := range order {
		out = append(out, CategoryAmount{
			Name:   name,
			Icon:   IconForCategory(name),
			Amount: Money{Cents: sums[name]},
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Cents > out[j].Amount.Cents
	})
	return out
}

// MonthlyBreakdown groups all transactions by calendar year-month and
// sums income and expense separately per group, ordered ascending by
// month key.
func MonthlyBreakdown(txs []Transaction) []MonthSummary {
	sums := make(map[string]*MonthSummary)
	for _, tx := range txs {
		key := tx.Date.MonthKey()
		ms, ok := sums[key]
		if !ok {
			ms = &MonthSummary{Key: key}
			sums[key] = ms
		}
		switch tx.Type {
		case Income:
			ms.Income.Cents += tx.Amount.Cents
		case Expense:
			ms.Expense.Cents += tx.Amount.Cents
		}
	}
	out := make([]MonthSummary, 0, len(sums))
	for _, ms := range sums {
		out = append(out, *ms)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// GroupByDay splits a date-sorted list into per-day groups, preserving
// the list's order both across and within days.
func GroupByDay(txs []Transaction) []DayGroup {
	var out []DayGroup
	for _, tx := range txs {
		if n := len(out); n > 0 && out[n-1].Date.SameDay(tx.Date) {
			out[n-1].Transactions = append(out[n-1].Transactions, tx)
			continue
		}
		out = append(out, DayGroup{Date: tx.Date, Transactions: []Transaction{tx}})
	}
	return out
}

// Filter restricts the list to a transaction type and a case-insensitive
// search substring over name and category. Both conditions compose with
// logical AND; FilterAll and the empty query each match everything.
func Filter(txs []Transaction, f TypeFilter, query string) []Transaction {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		switch f {
		case FilterIncome:
			if tx.Type != Income {
				continue
			}
		case FilterExpense:
			if tx.Type != Expense {
				continue
			}
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(tx.Name), query) &&
			!strings.Contains(strings.ToLower(tx.Category), query) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
