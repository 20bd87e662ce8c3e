// Package ledger computes and validates the stock adjustments that purchase
// and sale mutations apply to a product. It is pure: callers apply the
// resulting delta to the store inside their own transaction.
package ledger

import "fmt"

// Kind selects the direction a quantity change moves stock in.
type Kind int

const (
	// Purchase quantities add to stock.
	Purchase Kind = iota
	// Sale quantities remove from stock.
	Sale
)

func (k Kind) String() string {
	if k == Sale {
		return "sale"
	}
	return "purchase"
}

// ConflictError reports a mutation that would leave product stock negative.
type ConflictError struct {
	Stock int
	Delta int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("stock conflict: stock %d cannot absorb adjustment %d", e.Stock, e.Delta)
}

// Delta returns the signed stock adjustment for a quantity change on a
// purchase or sale row. Pass prevQty 0 for a create and newQty 0 for a
// delete. A purchase moving from 10 to 4 yields -6; a sale moving from
// 4 to 10 also yields -6.
func Delta(kind Kind, prevQty, newQty int) int {
	d := newQty - prevQty
	if kind == Sale {
		return -d
	}
	return d
}

// Check validates that applying delta keeps stock non-negative. This is the
// single rule behind every mutation guard: sale creates, sale quantity
// increases, purchase quantity reductions, and purchase deletes all reduce
// to "resulting stock must be >= 0".
func Check(stock, delta int) error {
	if stock+delta < 0 {
		return &ConflictError{Stock: stock, Delta: delta}
	}
	return nil
}

// LegacyShrinkCheck preserves the guard earlier versions of this tool
// applied to purchase quantity reductions: the on-hand stock was compared
// against the raw signed adjustment (stock > delta), so any reduction was
// rejected whenever stock was non-negative, i.e. always. Kept behind a
// config flag for exact parity; see PurchaseConfig.LegacyShrinkGuard.
func LegacyShrinkCheck(stock, delta int) error {
	if delta < 0 && stock > delta {
		return &ConflictError{Stock: stock, Delta: delta}
	}
	return nil
}
