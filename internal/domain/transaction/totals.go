package transaction

// DebitTotal sums the amounts of all debit transactions in the slice.
func DebitTotal(txns []*Transaction) float64 {
	var total float64
	for _, t := range txns {
		if t.IsDebit() {
			total += t.Amount
		}
	}
	return total
}

// CreditTotal sums the amounts of all credit transactions in the slice.
func CreditTotal(txns []*Transaction) float64 {
	var total float64
	for _, t := range txns {
		if t.IsCredit() {
			total += t.Amount
		}
	}
	return total
}

// TopDebitCategory returns the category with the highest summed debit amount
// and that sum. Empty categories fall under "Uncategorized". Ties resolve to
// the category that first reached the maximum in input order. Returns
// ("", 0) when the slice contains no debits.
func TopDebitCategory(txns []*Transaction) (string, float64) {
	totals := make(map[string]float64)
	var order []string
	for _, t := range txns {
		if !t.IsDebit() {
			continue
		}
		cat := t.Category
		if cat == "" {
			cat = "Uncategorized"
		}
		if _, seen := totals[cat]; !seen {
			order = append(order, cat)
		}
		totals[cat] += t.Amount
	}

	var top string
	var topAmount float64
	for _, cat := range order {
		if totals[cat] > topAmount || top == "" {
			top = cat
			topAmount = totals[cat]
		}
	}
	return top, topAmount
}
