// Package finance defines the records and transfer objects shared by the
// mock data generators and the HTTP API.
package finance

import (
	"strings"
	"time"
)

// DatasetVariant identifies one of the canned demo datasets.
type DatasetVariant string

// The dataset variants.
const (
	DatasetA DatasetVariant = "datasetA"
	DatasetB DatasetVariant = "datasetB"
)

// ErrUnknownDataset is returned by ParseDatasetVariant.
var ErrUnknownDataset = ClientError("unknown dataset variant")

// ParseDatasetVariant accepts both the short ("A") and the long ("datasetA")
// spelling of a variant, case-insensitively.
func ParseDatasetVariant(s string) (DatasetVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "dataseta":
		return DatasetA, nil
	case "b", "datasetb":
		return DatasetB, nil
	}
	return "", ErrUnknownDataset
}

// Short returns the one-letter name of the variant, as stored in the
// selectedDataset preference.
func (v DatasetVariant) Short() string {
	return strings.TrimPrefix(string(v), "dataset")
}

// Channel is the payment channel of a Transaction.
type Channel string

// The transaction channels.
const (
	ChannelCard          Channel = "card"
	ChannelCash          Channel = "cash"
	ChannelBankTransfer  Channel = "bankTransfer"
	ChannelDigitalWallet Channel = "digitalWallet"
	ChannelOther         Channel = "other"
)

// Transaction is a single posted movement of money. Negative amounts are
// income.
type Transaction struct {
	ID          string    `json:"id" yaml:"id"`
	AccountID   string    `json:"accountId" yaml:"account_id"`
	Amount      float64   `json:"amount" yaml:"amount"`
	Currency    string    `json:"currency" yaml:"currency"`
	PostedAt    time.Time `json:"postedAt" yaml:"posted_at"`
	Merchant    string    `json:"merchant,omitempty" yaml:"merchant,omitempty"`
	Channel     Channel   `json:"channel" yaml:"channel"`
	IsRecurring bool      `json:"isRecurring" yaml:"is_recurring"`
	IsTransfer  bool      `json:"isTransfer" yaml:"is_transfer"`
	IsBNPL      bool      `json:"isBNPL" yaml:"is_bnpl"`
}

// AccountType is the kind of an Account.
type AccountType string

// The account types.
const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCredit     AccountType = "credit"
	AccountInvestment AccountType = "investment"
	AccountLoan       AccountType = "loan"
	AccountOther      AccountType = "other"
)

// AccountStatus is the lifecycle state of an Account.
type AccountStatus string

// The account statuses.
const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
	AccountClosed   AccountStatus = "closed"
)

// AutopayMode is only set for credit accounts.
type AutopayMode string

// The autopay modes.
const (
	AutopayEnabled  AutopayMode = "enabled"
	AutopayDisabled AutopayMode = "disabled"
)

// Account is a financial account. Number holds the last four digits only.
type Account struct {
	ID          string        `json:"id" yaml:"id"`
	Type        AccountType   `json:"type" yaml:"type"`
	Name        string        `json:"name" yaml:"name"`
	Number      string        `json:"number" yaml:"number"`
	Currency    string        `json:"currency" yaml:"currency"`
	Status      AccountStatus `json:"status" yaml:"status"`
	AutopayMode AutopayMode   `json:"autopayMode,omitempty" yaml:"autopay_mode,omitempty"`
}

// KakeiboIntent is the household-ledger bucket a purchase belongs to.
type KakeiboIntent string

// The kakeibo intents.
const (
	IntentNeed       KakeiboIntent = "need"
	IntentWant       KakeiboIntent = "want"
	IntentCulture    KakeiboIntent = "culture"
	IntentUnexpected KakeiboIntent = "unexpected"
)

// ClassificationSource records who classified a transaction.
type ClassificationSource string

// The classification sources.
const (
	SourceManual     ClassificationSource = "manual"
	SourceUserRule   ClassificationSource = "userRule"
	SourceSystemHint ClassificationSource = "systemHint"
)

// Classification tags a Transaction with an intent, a category and free
// tags.
type Classification struct {
	ID            string               `json:"id" yaml:"id"`
	TransactionID string               `json:"transactionId" yaml:"transaction_id"`
	Intent        KakeiboIntent        `json:"intent" yaml:"intent"`
	Category      string               `json:"category,omitempty" yaml:"category,omitempty"`
	Tags          []string             `json:"tags" yaml:"tags"`
	Source        ClassificationSource `json:"source" yaml:"source"`
	Confidence    float64              `json:"confidence" yaml:"confidence"`
	CreatedAt     time.Time            `json:"createdAt" yaml:"created_at"`
}

// SuggestionType is the action a Suggestion proposes.
type SuggestionType string

// The suggestion types.
const (
	SuggestMoveToSavings         SuggestionType = "moveToSavings"
	SuggestAdjustBudget          SuggestionType = "adjustBudget"
	SuggestReviewSubscription    SuggestionType = "reviewSubscription"
	SuggestCategorizeTransaction SuggestionType = "categorizeTransaction"
	SuggestCreateRule            SuggestionType = "createRule"
	SuggestOther                 SuggestionType = "other"
)

// SuggestionState is how the user responded to a Suggestion.
type SuggestionState string

// The suggestion states.
const (
	SuggestionPending  SuggestionState = "pending"
	SuggestionAccepted SuggestionState = "accepted"
	SuggestionDeclined SuggestionState = "declined"
	SuggestionSnoozed  SuggestionState = "snoozed"
	SuggestionExpired  SuggestionState = "expired"
)

// Suggestion is a proposed action with the inputs needed to render it.
type Suggestion struct {
	ID             string            `json:"id" yaml:"id"`
	Type           SuggestionType    `json:"type" yaml:"type"`
	Inputs         map[string]string `json:"inputs" yaml:"inputs"`
	ExpectedImpact string            `json:"expectedImpact" yaml:"expected_impact"`
	Confidence     float64           `json:"confidence" yaml:"confidence"`
	CreatedAt      time.Time         `json:"createdAt" yaml:"created_at"`
	ExpiresAt      *time.Time        `json:"expiresAt,omitempty" yaml:"expires_at,omitempty"`
	State          SuggestionState   `json:"state" yaml:"state"`
}

// UserDTO is the public view of a user.
type UserDTO struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"displayName" yaml:"display_name"`
}
