package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"poolcalc/internal/cpmm"
	"poolcalc/internal/model"
	"poolcalc/internal/session"
)

const replHelp = `commands:
  set liquidity|initial-price|final-price|fee|center|decades <value>
  slider <position>       move the final price along the log slider
  show                    print the current quote
  help                    print this help
  quit                    exit`

// runRepl owns one calculator session and serializes all mutations through
// a single read loop, so the session never sees concurrent access.
func runRepl(cmd *cobra.Command, _ []string) error {
	sess := session.NewSession()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, replHelp)
	if err := showSession(out, sess); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, replHelp)
		case "show":
			if err := showSession(out, sess); err != nil {
				return err
			}
		case "slider":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: slider <position>")
				continue
			}
			pos, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				fmt.Fprintf(out, "invalid position: %v\n", err)
				continue
			}
			sess.SetSliderPosition(pos)
			if err := showSession(out, sess); err != nil {
				return err
			}
		case "set":
			if len(fields) != 3 {
				fmt.Fprintln(out, "usage: set <field> <value>")
				continue
			}
			value, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				fmt.Fprintf(out, "invalid value: %v\n", err)
				continue
			}
			if err := applyEdit(sess, fields[1], value); err != nil {
				// Rejected edits keep the prior value; just report and continue.
				fmt.Fprintf(out, "rejected: %v\n", err)
				continue
			}
			if err := showSession(out, sess); err != nil {
				return err
			}
		default:
			fmt.Fprintf(out, "unknown command %q (try help)\n", fields[0])
		}
	}
}

func applyEdit(sess *session.Session, field string, value float64) error {
	switch field {
	case "liquidity":
		return sess.SetInitialLiquidity(value)
	case "initial-price":
		return sess.SetInitialPrice(value)
	case "final-price":
		return sess.SetFinalPrice(value)
	case "fee":
		return sess.SetFeePercent(value)
	case "center":
		return sess.SetCenterPrice(value)
	case "decades":
		return sess.SetDecades(value)
	default:
		return fmt.Errorf("unknown field %q", field)
	}
}

func showSession(w io.Writer, sess *session.Session) error {
	snap, err := sess.Recompute()
	if err != nil {
		return err
	}

	record := model.QuoteRecord{
		Liquidity:    sess.InitialLiquidity(),
		InitialPrice: sess.InitialPrice(),
		FinalPrice:   sess.FinalPrice(),
		FeePercent:   sess.FeePercent(),

		InitialBaseReserves:  snap.Initial.BaseReserves(),
		InitialQuoteReserves: snap.Initial.QuoteReserves(),
		FinalBaseReserves:    snap.Final.BaseReserves(),
		FinalQuoteReserves:   snap.Final.QuoteReserves(),
		Invariant:            snap.Initial.Invariant(),

		PriceDelta:        snap.Result.PriceDelta,
		BaseWalletDelta:   snap.Result.BaseWalletDelta,
		QuoteWalletDelta:  snap.Result.QuoteWalletDelta,
		BaseFeeCollected:  snap.Result.BaseFeeCollected,
		QuoteFeeCollected: snap.Result.QuoteFeeCollected,
	}

	if err := renderRecord(w, record); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Slider position %s (center %s, %g decades)\n",
		cpmm.FormatNumber(sess.SliderPosition()),
		cpmm.FormatNumber(sess.CenterPrice()),
		sess.Decades(),
	)
	return err
}
