package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/mockdata"
	"github.com/wellfin/wellfin/pkg/format"
	"github.com/wellfin/wellfin/pkg/seededrand"
	"github.com/wellfin/wellfin/preferences"
)

// Output formats of the generate command.
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

var errUnknownFormat = errors.New("unknown output format")

func kindNames() []string {
	names := make([]string, len(mockdata.Kinds))
	for i, k := range mockdata.Kinds {
		names[i] = string(k)
	}
	return names
}

// generateOptions are the parsed flags of the generate command.
type generateOptions struct {
	kind     mockdata.Kind
	provider mockdata.Provider
	count    int
	format   string
	now      func() time.Time
}

func parseGenerateOptions(cmd *cobra.Command, args []string) (generateOptions, error) {
	var opts generateOptions

	kind, err := mockdata.ParseKind(args[0])
	if err != nil {
		return opts, errors.Wrapf(err, "%q (want one of %s)", args[0], strings.Join(kindNames(), ", "))
	}
	opts.kind = kind

	dataset, err := cmd.Flags().GetString("dataset")
	if err != nil {
		return opts, err
	}
	variant, err := finance.ParseDatasetVariant(dataset)
	if err != nil {
		return opts, errors.Wrapf(err, "%q", dataset)
	}

	seed, err := cmd.Flags().GetString("seed")
	if err != nil {
		return opts, err
	}
	if finance.IsNonEmpty(seed) {
		opts.provider = mockdata.NewConfigurable(seededrand.ParseSeed(seed), variant)
	} else {
		opts.provider = mockdata.ForVariant(variant)
	}

	if opts.count, err = cmd.Flags().GetInt("count"); err != nil {
		return opts, err
	}
	if opts.count < 0 {
		return opts, errors.New("count must not be negative")
	}

	if opts.format, err = cmd.Flags().GetString("format"); err != nil {
		return opts, err
	}
	switch opts.format {
	case formatJSON, formatYAML, formatText:
	default:
		return opts, errors.Wrap(errUnknownFormat, opts.format)
	}

	opts.now = time.Now
	return opts, nil
}

// GenerateCmdFunc implements a Cobra command that prints generated records.
func GenerateCmdFunc(cmd *cobra.Command, args []string) error {
	opts, err := parseGenerateOptions(cmd, args)
	if err != nil {
		return err
	}
	return generate(cmd.OutOrStdout(), opts)
}

func generate(w io.Writer, opts generateOptions) error {
	records, err := mockdata.Generate(opts.provider, opts.kind, opts.count, mockdata.WithClock(opts.now))
	if err != nil {
		return err
	}

	switch opts.format {
	case formatYAML:
		b, err := yaml.Marshal(records)
		if err != nil {
			return errors.Wrap(err, "failed to encode records")
		}
		_, err = w.Write(b)
		return err
	case formatText:
		return writeText(w, records, preferences.Defaults(), opts.now())
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
}

// writeText renders records as aligned columns, formatting amounts and dates
// the way the display preferences in prefs ask for.
func writeText(w io.Writer, records interface{}, prefs preferences.Preferences, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	date := func(t time.Time) string {
		return format.Date(t, prefs.DateFormat, prefs.UseYYYYMMDDDateFormat)
	}
	amount := func(v float64, code string) string {
		if prefs.UseJPYDisplay {
			code = "JPY"
		}
		return format.Currency(v, code, language.Japanese)
	}

	switch rs := records.(type) {
	case []finance.Transaction:
		fmt.Fprintln(tw, "DATE\tWEEK\tMERCHANT\tCHANNEL\tAMOUNT\tACCOUNT")
		for _, tx := range rs {
			week := format.StartOfWeek(tx.PostedAt, prefs.MondayWeekStart)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", date(tx.PostedAt), date(week), tx.Merchant, tx.Channel, amount(tx.Amount, tx.Currency), tx.AccountID)
		}
	case []finance.Account:
		fmt.Fprintln(tw, "NAME\tTYPE\tNUMBER\tCURRENCY\tSTATUS\tAUTOPAY")
		for _, a := range rs {
			fmt.Fprintf(tw, "%s\t%s\t****%s\t%s\t%s\t%s\n", a.Name, a.Type, a.Number, a.Currency, a.Status, a.AutopayMode)
		}
	case []finance.Classification:
		fmt.Fprintln(tw, "TRANSACTION\tINTENT\tCATEGORY\tTAGS\tCONFIDENCE\tCREATED")
		for _, c := range rs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\t%s\n", c.TransactionID, c.Intent, c.Category, strings.Join(c.Tags, ","), c.Confidence, format.Relative(c.CreatedAt, now))
		}
	case []finance.Suggestion:
		fmt.Fprintln(tw, "TYPE\tSTATE\tIMPACT\tCONFIDENCE\tCREATED\tEXPIRES")
		for _, s := range rs {
			expires := "-"
			if s.ExpiresAt != nil {
				expires = date(*s.ExpiresAt)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\t%s\n", s.Type, s.State, s.ExpectedImpact, s.Confidence, format.Relative(s.CreatedAt, now), expires)
		}
	default:
		return errors.Errorf("cannot render %T as text", records)
	}

	return tw.Flush()
}
