package mockdata

import "github.com/wellfin/wellfin/finance"

// Kind names a type of generated record.
type Kind string

// The record kinds.
const (
	KindTransactions    Kind = "transactions"
	KindAccounts        Kind = "accounts"
	KindClassifications Kind = "classifications"
	KindSuggestions     Kind = "suggestions"
)

// Kinds lists every Kind.
var Kinds = []Kind{KindTransactions, KindAccounts, KindClassifications, KindSuggestions}

// ErrUnknownKind is returned by ParseKind and Generate.
var ErrUnknownKind = finance.ClientError("unknown record kind")

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

// Generate produces n records of kind k for p. The result is one of
// []finance.Transaction, []finance.Account, []finance.Classification or
// []finance.Suggestion.
func Generate(p Provider, k Kind, n int, opts ...Option) (interface{}, error) {
	switch k {
	case KindTransactions:
		return Transactions(p, n, opts...), nil
	case KindAccounts:
		return Accounts(p, n, opts...), nil
	case KindClassifications:
		return Classifications(p, n, opts...), nil
	case KindSuggestions:
		return Suggestions(p, n, opts...), nil
	}
	return nil, ErrUnknownKind
}
