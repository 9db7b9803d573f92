package ledger

import (
	"bufio"
	"fmt"
	"io"

	"ledger/internal/core"
)

// MonthListing is one month block of the transaction listing.
// Incomes and Expenses are each sorted by date.
type MonthListing struct {
	Key      core.MonthKey
	Incomes  []core.Transaction
	Expenses []core.Transaction
}

func renderListing(w io.Writer, months []MonthListing) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Transactions:")
	fmt.Fprintln(bw)

	for _, m := range months {
		fmt.Fprintf(bw, "%s:\n", m.Key)
		if len(m.Incomes) > 0 {
			fmt.Fprintln(bw, "  Income:")
			for _, t := range m.Incomes {
				fmt.Fprintf(bw, "    - %s: $%s\n", t.Date, t.Amount)
			}
		}
		if len(m.Expenses) > 0 {
			fmt.Fprintln(bw, "  Expenses:")
			for _, t := range m.Expenses {
				fmt.Fprintf(bw, "    - %s: $%s, Category=\"%s\"\n", t.Date, t.Amount, t.Category)
			}
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

func renderReport(w io.Writer, s core.MonthlySummary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Monthly Report for %s:\n", s.Key)
	fmt.Fprintf(bw, "- Total Income: $%s\n", s.TotalIncome)
	fmt.Fprintf(bw, "- Total Expenses: $%s\n", s.TotalExpenses)
	fmt.Fprintln(bw, "- By Category:")

	if s.TotalIncome.IsPositive() {
		fmt.Fprintf(bw, "  * %s: $%s\n", core.IncomeCategory, s.TotalIncome)
	}
	for _, c := range s.ByCategory {
		fmt.Fprintf(bw, "  * %s: $%s\n", c.Name, c.Amount)
	}
	return bw.Flush()
}
