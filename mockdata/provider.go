// Package mockdata builds reproducible synthetic financial records for
// previews, demos and tests.
//
// Every record is derived from a Provider's seed through a
// seededrand.Generator, so the same provider always yields the same data.
package mockdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/pkg/seededrand"
)

// Stable seeds of the built-in providers.
const (
	DefaultSeed uint64 = 12345
	PreviewSeed uint64 = 67890
)

// idSalt separates the stream used for record IDs from the stream used for
// record fields.
const idSalt uint64 = 0x9e3779b97f4a7c15

// Provider parameterizes record generation. It is the only thing a caller
// has to implement; NewGenerator and the Transactions, Accounts,
// Classifications and Suggestions functions work with any Provider.
type Provider interface {
	Seed() uint64
	Variant() finance.DatasetVariant
}

// DefaultProvider is datasetA with the default seed.
type DefaultProvider struct{}

// Seed implements Provider.
func (DefaultProvider) Seed() uint64 { return DefaultSeed }

// Variant implements Provider.
func (DefaultProvider) Variant() finance.DatasetVariant { return finance.DatasetA }

// PreviewProvider is datasetB with a different seed, for variety.
type PreviewProvider struct{}

// Seed implements Provider.
func (PreviewProvider) Seed() uint64 { return PreviewSeed }

// Variant implements Provider.
func (PreviewProvider) Variant() finance.DatasetVariant { return finance.DatasetB }

// Configurable is a Provider chosen at runtime.
type Configurable struct {
	seed    uint64
	variant finance.DatasetVariant
}

// NewConfigurable returns a Provider for seed and variant. An empty variant
// means datasetA.
func NewConfigurable(seed uint64, variant finance.DatasetVariant) Configurable {
	if variant == "" {
		variant = finance.DatasetA
	}
	return Configurable{seed: seed, variant: variant}
}

// DatasetA returns a datasetA Provider with a custom seed.
func DatasetA(seed uint64) Configurable {
	return NewConfigurable(seed, finance.DatasetA)
}

// DatasetB returns a datasetB Provider with a custom seed.
func DatasetB(seed uint64) Configurable {
	return NewConfigurable(seed, finance.DatasetB)
}

// Seed implements Provider.
func (c Configurable) Seed() uint64 { return c.seed }

// Variant implements Provider.
func (c Configurable) Variant() finance.DatasetVariant { return c.variant }

// ForVariant returns the built-in Provider of a dataset variant.
func ForVariant(v finance.DatasetVariant) Provider {
	if v == finance.DatasetB {
		return PreviewProvider{}
	}
	return DefaultProvider{}
}

// NewGenerator creates a fresh generator positioned at the start of p's
// stream.
func NewGenerator(p Provider) seededrand.Generator {
	return seededrand.New(p.Seed())
}

func newIDGenerator(p Provider) seededrand.Generator {
	return seededrand.New(p.Seed() ^ idSalt)
}

// newID draws a version 4 UUID from g.
func newID(g *seededrand.Generator) string {
	id, err := uuid.NewRandomFromReader(g)
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}

// Option configures a record generator.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock pins the reference time that relative dates ("within the last
// 30 days") are computed from.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Transactions generates n transactions for p.
func Transactions(p Provider, n int, opts ...Option) []finance.Transaction {
	return NewTransactionGenerator(p, opts...).GenerateN(n, "")
}

// Accounts generates n accounts for p.
func Accounts(p Provider, n int, opts ...Option) []finance.Account {
	return NewAccountGenerator(p, opts...).GenerateN(n)
}

// Suggestions generates n suggestions for p.
func Suggestions(p Provider, n int, opts ...Option) []finance.Suggestion {
	return NewSuggestionGenerator(p, opts...).GenerateN(n)
}

// Classifications generates n transactions for p and classifies each of
// them.
func Classifications(p Provider, n int, opts ...Option) []finance.Classification {
	txs := Transactions(p, n, opts...)
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID
	}
	return NewClassificationGenerator(p, opts...).GenerateFor(ids)
}
