package mockdata

import (
	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/pkg/seededrand"
)

var (
	intents = []finance.KakeiboIntent{
		finance.IntentNeed,
		finance.IntentWant,
		finance.IntentCulture,
		finance.IntentUnexpected,
	}
	categories = []string{
		"Groceries", "Dining", "Transport", "Shopping", "Entertainment",
		"Bills", "Rent", "Healthcare", "Education", "Travel",
	}
	tags = []string{
		"Home", "Travel", "Work", "Tax", "Refund", "Subscription",
		"Business", "Amazon", "Recurring", "One-time",
	}
	sources = []finance.ClassificationSource{
		finance.SourceManual,
		finance.SourceUserRule,
		finance.SourceSystemHint,
	}
)

// ClassificationGenerator classifies transactions.
type ClassificationGenerator struct {
	provider Provider
	opts     options
}

// NewClassificationGenerator creates a ClassificationGenerator for p.
func NewClassificationGenerator(p Provider, opts ...Option) ClassificationGenerator {
	return ClassificationGenerator{provider: p, opts: newOptions(opts)}
}

// Generate classifies a single transaction from the start of the stream.
func (cg ClassificationGenerator) Generate(transactionID string) finance.Classification {
	return cg.GenerateFor([]string{transactionID})[0]
}

// GenerateFor classifies every transaction ID, in order, from one stream.
func (cg ClassificationGenerator) GenerateFor(transactionIDs []string) []finance.Classification {
	gen, ids := NewGenerator(cg.provider), newIDGenerator(cg.provider)
	now := cg.opts.now()

	out := make([]finance.Classification, 0, len(transactionIDs))
	for _, txID := range transactionIDs {
		c := finance.Classification{
			TransactionID: txID,
			Intent:        seededrand.ChoiceOr(&gen, intents, finance.IntentNeed),
			Category:      seededrand.ChoiceOr(&gen, categories, ""),
		}

		// 0-3 tags; Shuffled leaves gen where it is.
		tagCount := gen.Intn(4)
		c.Tags = seededrand.Shuffled(gen, tags)[:tagCount]

		c.Source = seededrand.ChoiceOr(&gen, sources, finance.SourceSystemHint)
		c.Confidence = gen.FloatRange(0.5, 1.0)
		c.CreatedAt = daysAgo(now, gen.Intn(30))
		c.ID = newID(&ids)
		out = append(out, c)
	}
	return out
}
