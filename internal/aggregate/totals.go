package aggregate

import "github.com/shopspring/decimal"

// Entry is one key with its accumulated amount.
type Entry[K comparable] struct {
	Key    K
	Amount decimal.Decimal
}

// Totals maps keys to running sums and remembers the order keys were first seen.
// The zero value is not usable; call NewTotals.
type Totals[K comparable] struct {
	order []K
	sums  map[K]decimal.Decimal
}

// NewTotals returns an empty accumulator.
func NewTotals[K comparable]() *Totals[K] {
	return &Totals[K]{sums: make(map[K]decimal.Decimal)}
}

// Add adds amount to key, inserting the key at zero first if it is new.
func (t *Totals[K]) Add(key K, amount decimal.Decimal) {
	cur, ok := t.sums[key]
	if !ok {
		t.order = append(t.order, key)
		cur = decimal.Zero
	}
	t.sums[key] = cur.Add(amount)
}

// Get returns the sum for key and whether the key has been seen.
func (t *Totals[K]) Get(key K) (decimal.Decimal, bool) {
	v, ok := t.sums[key]
	return v, ok
}

// Amount returns the sum for key, or zero if the key was never added.
func (t *Totals[K]) Amount(key K) decimal.Decimal {
	if v, ok := t.sums[key]; ok {
		return v
	}
	return decimal.Zero
}

// Len returns the number of distinct keys.
func (t *Totals[K]) Len() int {
	return len(t.order)
}

// Keys returns the keys in insertion order.
func (t *Totals[K]) Keys() []K {
	keys := make([]K, len(t.order))
	copy(keys, t.order)
	return keys
}

// Entries returns key/amount pairs in insertion order.
func (t *Totals[K]) Entries() []Entry[K] {
	entries := make([]Entry[K], len(t.order))
	for i, k := range t.order {
		entries[i] = Entry[K]{Key: k, Amount: t.sums[k]}
	}
	return entries
}

// Sum returns the sum of all values, added in insertion order.
func (t *Totals[K]) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, k := range t.order {
		total = total.Add(t.sums[k])
	}
	return total
}
