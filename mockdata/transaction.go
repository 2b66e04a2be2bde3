package mockdata

import (
	"fmt"
	"math"
	"time"

	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/pkg/seededrand"
)

var merchants = []string{
	"Starbucks", "Amazon", "7-Eleven", "McDonald's", "FamilyMart",
	"Lawson", "UNIQLO", "Apple Store", "Google Play", "Netflix",
	"Spotify", "JR East", "Tokyo Metro", "Uber", "DoorDash",
}

var channels = []finance.Channel{
	finance.ChannelCard,
	finance.ChannelCash,
	finance.ChannelBankTransfer,
	finance.ChannelDigitalWallet,
	finance.ChannelOther,
}

// Bounds of generated amounts; negative amounts are income.
const (
	minAmount = -50000
	maxAmount = 50000
)

// TransactionGenerator generates transactions posted within the last 90
// days.
type TransactionGenerator struct {
	provider Provider
	opts     options
}

// NewTransactionGenerator creates a TransactionGenerator for p.
func NewTransactionGenerator(p Provider, opts ...Option) TransactionGenerator {
	return TransactionGenerator{provider: p, opts: newOptions(opts)}
}

// Generate returns the first transaction of the provider's stream. An empty
// accountID picks one of account-0 .. account-4.
func (tg TransactionGenerator) Generate(accountID string) finance.Transaction {
	return tg.GenerateN(1, accountID)[0]
}

// GenerateN returns n transactions drawn from a single stream.
func (tg TransactionGenerator) GenerateN(n int, accountID string) []finance.Transaction {
	gen, ids := NewGenerator(tg.provider), newIDGenerator(tg.provider)
	now := tg.opts.now()

	txs := make([]finance.Transaction, 0, clampCount(n))
	for i := 0; i < n; i++ {
		merchant := seededrand.ChoiceOr(&gen, merchants, "")
		channel := seededrand.ChoiceOr(&gen, channels, finance.ChannelCard)
		amount := roundAmount(gen.FloatRange(minAmount, maxAmount))
		postedAt := daysAgo(now, gen.Intn(90))
		txs = append(txs, tg.finish(&gen, &ids, accountID, merchant, channel, amount, postedAt))
	}
	return txs
}

// GenerateBetween returns n transactions posted uniformly between from and
// to.
func (tg TransactionGenerator) GenerateBetween(n int, from, to time.Time, accountID string) []finance.Transaction {
	if to.Before(from) {
		from, to = to, from
	}
	gen, ids := NewGenerator(tg.provider), newIDGenerator(tg.provider)
	span := to.Sub(from).Seconds()

	txs := make([]finance.Transaction, 0, clampCount(n))
	for i := 0; i < n; i++ {
		offset := gen.FloatRange(0, span)
		postedAt := from.Add(time.Duration(offset * float64(time.Second)))
		merchant := seededrand.ChoiceOr(&gen, merchants, "")
		channel := seededrand.ChoiceOr(&gen, channels, finance.ChannelCard)
		amount := roundAmount(gen.FloatRange(minAmount, maxAmount))
		txs = append(txs, tg.finish(&gen, &ids, accountID, merchant, channel, amount, postedAt))
	}
	return txs
}

func (tg TransactionGenerator) finish(gen, ids *seededrand.Generator, accountID, merchant string, channel finance.Channel, amount float64, postedAt time.Time) finance.Transaction {
	if accountID == "" {
		accountID = fmt.Sprintf("account-%d", gen.Intn(5))
	}
	return finance.Transaction{
		ID:          newID(ids),
		AccountID:   accountID,
		Amount:      amount,
		Currency:    "JPY",
		PostedAt:    postedAt,
		Merchant:    merchant,
		Channel:     channel,
		IsRecurring: gen.Bool(),
		IsTransfer:  gen.Bool(),
		IsBNPL:      gen.Bool(),
	}
}

// roundAmount keeps two fractional digits.
func roundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
