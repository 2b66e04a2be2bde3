package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/mockdata"
	"github.com/wellfin/wellfin/pkg/seededrand"
	"github.com/wellfin/wellfin/preferences"
)

var refTime = time.Date(2025, 11, 12, 9, 0, 0, 0, time.UTC)

func fixedOptions(k mockdata.Kind, p mockdata.Provider, n int, format string) generateOptions {
	return generateOptions{
		kind:     k,
		provider: p,
		count:    n,
		format:   format,
		now:      func() time.Time { return refTime },
	}
}

func TestGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, fixedOptions(mockdata.KindTransactions, mockdata.DefaultProvider{}, 5, formatJSON)))

	var got []finance.Transaction
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	want := mockdata.Transactions(mockdata.DefaultProvider{}, 5, mockdata.WithClock(func() time.Time { return refTime }))
	require.Len(t, got, 5)
	for i := range want {
		require.Equal(t, want[i].ID, got[i].ID)
		require.Equal(t, want[i].Amount, got[i].Amount)
		require.True(t, want[i].PostedAt.Equal(got[i].PostedAt))
	}
}

func TestGenerateYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, fixedOptions(mockdata.KindAccounts, mockdata.DatasetB(7), 3, formatYAML)))

	var got []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)

	want := mockdata.Accounts(mockdata.DatasetB(7), 3)
	for i := range want {
		require.Equal(t, want[i].ID, got[i]["id"])
		require.Equal(t, want[i].Name, got[i]["name"])
	}
}

func TestGenerateText(t *testing.T) {
	for _, k := range mockdata.Kinds {
		t.Run(string(k), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, generate(&buf, fixedOptions(k, mockdata.DefaultProvider{}, 4, formatText)))

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			require.Len(t, lines, 5)
		})
	}
}

func TestGenerateTextFormatsAmounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, fixedOptions(mockdata.KindTransactions, mockdata.DefaultProvider{}, 3, formatText)))

	require.Contains(t, buf.String(), "¥")
	require.Contains(t, buf.String(), "2025-")
}

func TestGenerateDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	opts := fixedOptions(mockdata.KindSuggestions, mockdata.DatasetA(99), 6, formatJSON)
	require.NoError(t, generate(&a, opts))
	require.NoError(t, generate(&b, opts))
	require.Equal(t, a.String(), b.String())
}

func TestGenerateCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"generate", "accounts", "--seed", "demo", "--dataset", "b", "--count", "2"})
	require.NoError(t, cmd.Execute())

	var got []finance.Account
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, mockdata.Accounts(mockdata.DatasetB(seededrand.ParseSeed("demo")), 2), got)
}

func TestGenerateCommandRejects(t *testing.T) {
	table := [][]string{
		{"generate", "planets"},
		{"generate", "accounts", "--dataset", "c"},
		{"generate", "accounts", "--count", "-1"},
		{"generate", "accounts", "--format", "xml"},
		{"generate"},
	}
	for _, args := range table {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(args)
			require.Error(t, cmd.Execute())
		})
	}
}

func TestWriteTextWeekAndCurrency(t *testing.T) {
	// Wednesday.
	posted := time.Date(2025, 11, 12, 9, 0, 0, 0, time.UTC)
	txs := []finance.Transaction{{
		ID:        "tx-1",
		AccountID: "account-1",
		Amount:    1234567.5,
		Currency:  "BTC",
		PostedAt:  posted,
		Merchant:  "Cafe",
		Channel:   finance.ChannelCard,
	}}

	prefs := preferences.Defaults()
	prefs.UseJPYDisplay = false
	prefs.UseYYYYMMDDDateFormat = true

	prefs.MondayWeekStart = true
	var monday bytes.Buffer
	require.NoError(t, writeText(&monday, txs, prefs, refTime))
	require.Contains(t, monday.String(), "2025-11-10")
	require.Contains(t, monday.String(), "BTC 1,234,567.5")

	prefs.MondayWeekStart = false
	var sunday bytes.Buffer
	require.NoError(t, writeText(&sunday, txs, prefs, refTime))
	require.Contains(t, sunday.String(), "2025-11-09")
	require.NotContains(t, sunday.String(), "2025-11-10")
}
