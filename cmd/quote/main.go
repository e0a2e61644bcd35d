// Quote prices liveaboard trips offline from an upstream trip document.
//
// Usage:
//
//	quote price --trip trip.json --select lower:single --select rp-7/master:double
//	quote from-price --trip trip.json --role public
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"liveaboard-booking/models"
	"liveaboard-booking/pricing"
	"liveaboard-booking/utils"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "quote",
		Usage:     "Price liveaboard cabin selections and group FOC offers",
		Writer:    out,
		ErrWriter: os.Stderr,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config/pricing.json",
				Usage:   "Pricing config file",
				EnvVars: []string{"PRICING_CONFIG_PATH"},
			},
		},

		Commands: []*cli.Command{
			priceCommand(),
			fromPriceCommand(),
		},
	}
}

func tripFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "trip",
		Aliases:  []string{"t"},
		Usage:    "Path to the upstream trip JSON document",
		Required: true,
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "table",
		Usage:   "Output format (table, json)",
	}
}

// =============================================================================
// PRICE COMMAND
// =============================================================================

func priceCommand() *cli.Command {
	return &cli.Command{
		Name:  "price",
		Usage: "Price a set of cabin selections on a trip",
		Flags: []cli.Flag{
			tripFlag(),
			formatFlag(),
			&cli.StringSliceFlag{
				Name:     "select",
				Aliases:  []string{"s"},
				Usage:    "Cabin selection [PLAN/]CABIN:OCCUPANCY[xQTY], repeatable",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "currency",
				Usage: "Override the vessel billing currency",
			},
		},
		Action: runPrice,
	}
}

func runPrice(c *cli.Context) error {
	engine, err := pricing.NewEngine(c.String("config"))
	if err != nil {
		return err
	}
	raw, err := readTrip(c.String("trip"))
	if err != nil {
		return err
	}
	trip, err := pricing.NormalizeTrip(raw)
	if err != nil {
		return err
	}

	var selections []models.Selection
	for _, s := range c.StringSlice("select") {
		sel, err := utils.ParseSelection(s)
		if err != nil {
			return err
		}
		selections = append(selections, sel)
	}

	currency := c.String("currency")
	if currency == "" {
		currency = engine.CurrencyForBoat(trip.Boat)
	}
	result, err := engine.Quote(models.QuoteRequest{Trip: trip, Selections: selections, Currency: currency})
	if err != nil {
		return err
	}

	if c.String("format") == "json" {
		return writeJSON(c.App.Writer, result)
	}
	return writeQuoteTable(c.App.Writer, result)
}

func writeQuoteTable(out io.Writer, r *models.PricingResult) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "CABIN\tOCCUPANCY\tGUESTS\tPER PERSON\n")
	for _, u := range r.Units {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", u.CabinTypeID, u.Label, u.Guests, utils.FormatAmount(u.Price, r.Currency))
	}
	fmt.Fprintf(tw, "\t\t\t\n")
	fmt.Fprintf(tw, "Pax\t\t\t%d\n", r.Pax)
	fmt.Fprintf(tw, "Subtotal\t\t\t%s\n", utils.FormatAmount(r.BaseTotal, r.Currency))
	if r.WinningOffer != nil {
		fmt.Fprintf(tw, "Offer %q\t%.1f%% of guests\t%d free\t-%s\n",
			r.WinningOffer.Source, r.WinningOffer.EfficiencyRate()*100, r.FreeUnits, utils.FormatAmount(r.FocDiscount, r.Currency))
	}
	fmt.Fprintf(tw, "Total\t\t\t%s\n", utils.FormatAmount(r.TotalPrice, r.Currency))
	fmt.Fprintf(tw, "Commission\t\t%s\t-%s\n", utils.FormatRate(r.CommissionRate), utils.FormatAmount(r.CommissionAmount, r.Currency))
	fmt.Fprintf(tw, "Payable\t\t\t%s\n", utils.FormatAmount(r.FinalAmount, r.Currency))
	return tw.Flush()
}

// =============================================================================
// FROM-PRICE COMMAND
// =============================================================================

func fromPriceCommand() *cli.Command {
	return &cli.Command{
		Name:  "from-price",
		Usage: "Show the lowest displayable price of a trip",
		Flags: []cli.Flag{
			tripFlag(),
			formatFlag(),
			&cli.StringFlag{
				Name:  "role",
				Value: string(models.RolePublic),
				Usage: "Viewer role (public, agent, admin)",
			},
		},
		Action: runFromPrice,
	}
}

func runFromPrice(c *cli.Context) error {
	engine, err := pricing.NewEngine(c.String("config"))
	if err != nil {
		return err
	}
	raw, err := readTrip(c.String("trip"))
	if err != nil {
		return err
	}
	trip, err := pricing.NormalizeTrip(raw)
	if err != nil {
		return err
	}

	fp := engine.ResolveFromPrice(pricing.RawRatePlans(raw), models.ParseRole(c.String("role")))
	if c.String("format") == "json" {
		return writeJSON(c.App.Writer, fp)
	}
	if fp == nil {
		fmt.Fprintln(c.App.Writer, "No bookable price")
		return nil
	}

	currency := engine.CurrencyForBoat(trip.Boat)
	line := "From " + utils.FormatAmount(fp.Price, currency)
	if fp.ParentPrice != nil {
		line += " (was " + utils.FormatAmount(*fp.ParentPrice, currency) + ")"
	}
	if fp.Badge != "" {
		line += " [" + fp.Badge + "]"
	}
	fmt.Fprintln(c.App.Writer, line)
	return nil
}

func readTrip(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trip: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse trip: %w", err)
	}
	return raw, nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
