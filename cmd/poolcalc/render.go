package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"poolcalc/internal/cpmm"
	"poolcalc/internal/model"
)

// renderRecord prints a quote record as an aligned two-column report, all
// values rendered through the display formatter.
func renderRecord(w io.Writer, record model.QuoteRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	rows := []struct {
		label string
		value float64
	}{
		{"Liquidity", record.Liquidity},
		{"Initial price", record.InitialPrice},
		{"Final price", record.FinalPrice},
		{"Fee percent", record.FeePercent},
		{"Initial base reserves", record.InitialBaseReserves},
		{"Initial quote reserves", record.InitialQuoteReserves},
		{"Final base reserves", record.FinalBaseReserves},
		{"Final quote reserves", record.FinalQuoteReserves},
		{"Invariant (L^2)", record.Invariant},
		{"Price delta", record.PriceDelta},
		{"Base wallet delta", record.BaseWalletDelta},
		{"Quote wallet delta", record.QuoteWalletDelta},
		{"Base fee collected", record.BaseFeeCollected},
		{"Quote fee collected", record.QuoteFeeCollected},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row.label, cpmm.FormatNumber(row.value)); err != nil {
			return err
		}
	}

	return tw.Flush()
}
