package mockdata

import (
	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/pkg/seededrand"
)

var (
	accountTypes = []finance.AccountType{
		finance.AccountChecking,
		finance.AccountSavings,
		finance.AccountCredit,
		finance.AccountInvestment,
		finance.AccountLoan,
	}
	accountNames = []string{
		"Main Checking", "Savings Account", "Credit Card", "Investment Portfolio",
		"Emergency Fund", "Travel Fund", "House Loan", "Car Loan",
	}
	currencies = []string{"JPY", "USD", "EUR"}
)

// AccountGenerator generates accounts.
type AccountGenerator struct {
	provider Provider
	opts     options
}

// NewAccountGenerator creates an AccountGenerator for p.
func NewAccountGenerator(p Provider, opts ...Option) AccountGenerator {
	return AccountGenerator{provider: p, opts: newOptions(opts)}
}

// Generate returns the first account of the provider's stream.
func (ag AccountGenerator) Generate() finance.Account {
	return ag.GenerateN(1)[0]
}

// GenerateN returns n accounts drawn from a single stream.
func (ag AccountGenerator) GenerateN(n int) []finance.Account {
	gen, ids := NewGenerator(ag.provider), newIDGenerator(ag.provider)

	accounts := make([]finance.Account, 0, clampCount(n))
	for i := 0; i < n; i++ {
		a := finance.Account{
			Type:     seededrand.ChoiceOr(&gen, accountTypes, finance.AccountChecking),
			Name:     seededrand.ChoiceOr(&gen, accountNames, "Account"),
			Currency: seededrand.ChoiceOr(&gen, currencies, "JPY"),
			Status:   finance.AccountInactive,
		}
		if gen.Bool() {
			a.Status = finance.AccountActive
		}
		if a.Type == finance.AccountCredit {
			a.AutopayMode = finance.AutopayDisabled
			if gen.Bool() {
				a.AutopayMode = finance.AutopayEnabled
			}
		}
		a.Number = seededrand.NumericString(&gen, 4)
		a.ID = newID(&ids)
		accounts = append(accounts, a)
	}
	return accounts
}
