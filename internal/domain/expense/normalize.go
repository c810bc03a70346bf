package expense

import "strings"

// NormalizeToMonthly converts a recurring expense amount to its monthly
// equivalent. An empty frequency means the amount is already monthly, and an
// unrecognized frequency passes the amount through unchanged rather than
// erroring. Matching is case-insensitive.
func NormalizeToMonthly(amount float64, frequency string) float64 {
	switch strings.ToLower(frequency) {
	case FrequencyWeekly:
		return amount * 52 / 12
	case FrequencyBiweekly:
		return amount * 26 / 12
	case FrequencyMonthly:
		return amount
	case FrequencyYearly:
		return amount / 12
	}
	return amount
}

// MonthlyAmount returns the expense's monthly-equivalent amount.
func (e *Expense) MonthlyAmount() float64 {
	return NormalizeToMonthly(e.Amount, e.Frequency)
}

// TotalRecurringMonthly sums the monthly-normalized amounts of all recurring
// expenses in the slice.
func TotalRecurringMonthly(expenses []*Expense) float64 {
	var total float64
	for _, e := range expenses {
		if e.IsRecurring {
			total += e.MonthlyAmount()
		}
	}
	return total
}
