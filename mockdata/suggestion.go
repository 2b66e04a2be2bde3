package mockdata

import (
	"strconv"

	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/pkg/seededrand"
)

var (
	suggestionTypes = []finance.SuggestionType{
		finance.SuggestMoveToSavings,
		finance.SuggestAdjustBudget,
		finance.SuggestReviewSubscription,
		finance.SuggestCategorizeTransaction,
		finance.SuggestCreateRule,
		finance.SuggestOther,
	}
	// Expired is never generated; suggestions expire through ExpiresAt.
	suggestionStates = []finance.SuggestionState{
		finance.SuggestionPending,
		finance.SuggestionAccepted,
		finance.SuggestionDeclined,
		finance.SuggestionSnoozed,
	}
	expectedImpacts = []string{
		"Save ¥5,000 this month",
		"Reduce overspending by 15%",
		"Optimize subscription costs",
		"Improve categorization accuracy",
	}
)

// SuggestionGenerator generates suggestions created within the last week.
type SuggestionGenerator struct {
	provider Provider
	opts     options
}

// NewSuggestionGenerator creates a SuggestionGenerator for p.
func NewSuggestionGenerator(p Provider, opts ...Option) SuggestionGenerator {
	return SuggestionGenerator{provider: p, opts: newOptions(opts)}
}

// Generate returns the first suggestion of the provider's stream.
func (sg SuggestionGenerator) Generate() finance.Suggestion {
	return sg.GenerateN(1)[0]
}

// GeneratePending returns n suggestions, all in the pending state.
func (sg SuggestionGenerator) GeneratePending(n int) []finance.Suggestion {
	out := sg.GenerateN(n)
	for i := range out {
		out[i].State = finance.SuggestionPending
	}
	return out
}

// GenerateN returns n suggestions drawn from a single stream.
func (sg SuggestionGenerator) GenerateN(n int) []finance.Suggestion {
	gen, ids := NewGenerator(sg.provider), newIDGenerator(sg.provider)
	now := sg.opts.now()

	out := make([]finance.Suggestion, 0, clampCount(n))
	for i := 0; i < n; i++ {
		s := finance.Suggestion{
			Type:  seededrand.ChoiceOr(&gen, suggestionTypes, finance.SuggestOther),
			State: seededrand.ChoiceOr(&gen, suggestionStates, finance.SuggestionPending),
		}
		s.Inputs = suggestionInputs(&gen, &ids, s.Type)
		s.ExpectedImpact = seededrand.ChoiceOr(&gen, expectedImpacts, "Improve your finances")
		s.Confidence = gen.FloatRange(0.6, 1.0)
		s.CreatedAt = daysAgo(now, gen.Intn(7))
		if gen.Bool() {
			expiresAt := s.CreatedAt.AddDate(0, 0, 7)
			s.ExpiresAt = &expiresAt
		}
		s.ID = newID(&ids)
		out = append(out, s)
	}
	return out
}

func suggestionInputs(gen, ids *seededrand.Generator, t finance.SuggestionType) map[string]string {
	inputs := make(map[string]string)
	switch t {
	case finance.SuggestMoveToSavings:
		inputs["amount"] = strconv.Itoa(gen.IntRange(1000, 50000))
		inputs["reason"] = "You have extra funds this month"
	case finance.SuggestAdjustBudget:
		inputs["category"] = seededrand.ChoiceOr(gen, []string{"Groceries", "Dining", "Shopping"}, "Groceries")
		inputs["current"] = strconv.Itoa(gen.IntRange(10000, 50000))
		inputs["suggested"] = strconv.Itoa(gen.IntRange(15000, 60000))
	case finance.SuggestReviewSubscription:
		inputs["service"] = seededrand.ChoiceOr(gen, []string{"Netflix", "Spotify", "Amazon Prime"}, "Netflix")
		inputs["amount"] = strconv.Itoa(gen.IntRange(500, 2000))
	case finance.SuggestCategorizeTransaction:
		inputs["transactionId"] = newID(ids)
		inputs["suggestedCategory"] = seededrand.ChoiceOr(gen, []string{"Groceries", "Dining", "Transport"}, "Groceries")
	case finance.SuggestCreateRule:
		inputs["merchant"] = seededrand.ChoiceOr(gen, []string{"Amazon", "Starbucks", "7-Eleven"}, "Amazon")
		inputs["action"] = "Auto-tag as Shopping"
	default:
		inputs["message"] = "Review your spending patterns"
	}
	return inputs
}
