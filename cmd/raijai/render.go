package main

import (
	"fmt"
	"io"
	"strings"

	"raijai/internal/core"
)

func renderDayGroups(w io.Writer, groups []core.DayGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "no transactions")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "%s\n", g.Date)
		for _, tx := range g.Transactions {
			sign := "-"
			if tx.Type == core.Income {
				sign = "+"
			}
			fmt.Fprintf(w, "  %-13d %-20s %-14s %s%s\n", tx.ID, tx.Name, tx.Category, sign, tx.Amount)
		}
	}
}

func renderSummary(w io.Writer, txs []core.Transaction, today core.Date) {
	totals := core.ComputeTotals(txs)
	fmt.Fprintf(w, "balance:  %s\n", totals.Balance())
	fmt.Fprintf(w, "income:   %s\n", totals.Income)
	fmt.Fprintf(w, "expense:  %s\n", totals.Expense)
	fmt.Fprintf(w, "income share: %.0f%%\n", totals.IncomeShare()*100)
	fmt.Fprintf(w, "avg daily spend: %s\n", core.AverageDailySpend(txs, today))
}

func renderCategoryReport(w io.Writer, groups []core.CategoryAmount) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "no expenses")
		return
	}
	max := groups[0].Amount.Cents
	for _, g := range groups {
		bar := ""
		if max > 0 {
			bar = strings.Repeat("#", int(g.Amount.Cents*20/max))
		}
		fmt.Fprintf(w, "%-20s %12s  %s\n", g.Name, g.Amount, bar)
	}
}

func renderMonthlyReport(w io.Writer, months []core.MonthSummary) {
	if len(months) == 0 {
		fmt.Fprintln(w, "no transactions")
		return
	}
	fmt.Fprintf(w, "%-9s %12s %12s %12s\n", "month", "income", "expense", "net")
	for _, m := range months {
		net := core.Money{Cents: m.Income.Cents - m.Expense.Cents}
		fmt.Fprintf(w, "%-9s %12s %12s %12s\n", m.Key, m.Income, m.Expense, net)
	}
}
