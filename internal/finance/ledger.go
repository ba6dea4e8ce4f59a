package finance

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one line of the general cash book.
type LedgerEntry struct {
	Transaction    Transaction
	Income         decimal.Decimal // Amount if the transaction is income, 0 otherwise
	Expense        decimal.Decimal // Amount if the transaction is an expense, 0 otherwise
	RunningBalance decimal.Decimal // Balance after this transaction
}

// Ledger is the general cash book for a list of transactions.
type Ledger struct {
	Entries      []LedgerEntry
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	FinalBalance decimal.Decimal
}

// SortByDate returns a copy of the transactions sorted ascending by date.
// Transactions on the same date keep their relative order.
func SortByDate(transactions []Transaction) []Transaction {
	sorted := slices.Clone(transactions)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return a.Date.Time().Compare(b.Date.Time())
	})

	return sorted
}

// Walk returns the cash book entries for the transactions in date order.
//
// The sequence computes the running balance while it is iterated and
// starts at a balance of 0 for each iteration.
func Walk(transactions []Transaction) iter.Seq[LedgerEntry] {
	sorted := SortByDate(transactions)

	return func(yield func(LedgerEntry) bool) {
		balance := decimal.Zero

		for _, t := range sorted {
			entry := LedgerEntry{Transaction: t}

			// Everything that is not income reduces the balance
			if t.Type == KindIncome {
				entry.Income = t.Amount
				balance = balance.Add(t.Amount)
			} else {
				entry.Expense = t.Amount
				balance = balance.Sub(t.Amount)
			}

			entry.RunningBalance = balance
			if !yield(entry) {
				return
			}
		}
	}
}

// ComputeLedger computes the full cash book with its totals.
func ComputeLedger(transactions []Transaction) Ledger {
	ledger := Ledger{
		Entries: make([]LedgerEntry, 0, len(transactions)),
	}

	for entry := range Walk(transactions) {
		ledger.Entries = append(ledger.Entries, entry)
		ledger.TotalIncome = ledger.TotalIncome.Add(entry.Income)
		ledger.TotalExpense = ledger.TotalExpense.Add(entry.Expense)
	}

	ledger.FinalBalance = ledger.TotalIncome.Sub(ledger.TotalExpense)
	return ledger
}
