// Package reports serves the aggregate views over the transaction
// list. The views themselves are pure functions in core; this service
// memoizes them behind a content fingerprint of the list so repeated
// renders of an unchanged ledger do not recompute.
package reports

import (
	"fmt"
	"hash/fnv"
	"time"

	"raijai/internal/cache"
	"raijai/internal/core"
)

type Service struct {
	byCategory *cache.LRUCache[[]core.CategoryAmount]
	byMonth    *cache.LRUCache[[]core.MonthSummary]
}

func NewService() *Service {
	return &Service{
		byCategory: cache.NewLRUCache[[]core.CategoryAmount](16, 5*time.Minute),
		byMonth:    cache.NewLRUCache[[]core.MonthSummary](16, 5*time.Minute),
	}
}

// Fingerprint hashes the fields that feed the aggregations. Two lists
// with the same fingerprint produce the same reports.
func Fingerprint(txs []core.Transaction) string {
	h := fnv.New64a()
	for _, tx := range txs {
		fmt.Fprintf(h, "%d|%s|%s|%d|%s;", tx.ID, tx.Type, tx.Category, tx.Amount.Cents, tx.Date)
	}
	return fmt.Sprintf("%x", h.Sum64())
}

// ByCategory returns the expense-by-category aggregation, descending
// by summed amount.
func (s *Service) ByCategory(txs []core.Transaction) []core.CategoryAmount {
	key := Fingerprint(txs)
	if cached, ok := s.byCategory.Get(key); ok {
		return cached
	}
	out := core.ExpensesByCategory(txs)
	s.byCategory.Set(key, out)
	return out
}

// ByMonth returns the per-month income/expense aggregation, ascending
// by month key.
func (s *Service) ByMonth(txs []core.Transaction) []core.MonthSummary {
	key := Fingerprint(txs)
	if cached, ok := s.byMonth.Get(key); ok {
		return cached
	}
	out := core.MonthlyBreakdown(txs)
	s.byMonth.Set(key, out)
	return out
}
