package sim

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteLedgerCSV writes one row per (year, agent).
func WriteLedgerCSV(path string, ledger []YearRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"mean_market_value",
		"strategy",
		"cash",
		"depot",
		"total_value",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		for _, a := range r.Agents {
			row := []string{
				strconv.Itoa(r.Year),
				fmtFloat(r.MeanMarketValue),
				a.Strategy,
				fmtFloat(a.Portfolio.Cash),
				fmtFloat(a.Portfolio.Depot),
				fmtFloat(a.Portfolio.TotalValue),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
