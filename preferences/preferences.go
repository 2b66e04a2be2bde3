package preferences

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/pkg/log"
)

// CurrentVersion is the schema version written by Load.
const CurrentVersion = 1

const prefix = "userPreferences."

// VersionKey holds the schema version of the stored preferences.
const VersionKey = prefix + "version"

// Keys of the individual preferences.
const (
	KeyCurrencyFormat        = prefix + "currencyFormat"
	KeyDateFormat            = prefix + "dateFormat"
	KeyShowNotifications     = prefix + "showNotifications"
	KeyDemoDataset           = prefix + "demoDataset"
	KeySelectedDataset       = prefix + "selectedDataset"
	KeyReduceMotion          = prefix + "reduceMotion"
	KeyUseJPYDisplay         = prefix + "useJPYDisplay"
	KeyUseYYYYMMDDDateFormat = prefix + "useYYYYMMDDDateFormat"
	KeyMondayWeekStart       = prefix + "mondayWeekStart"
)

// Preferences are the user-facing settings of the app.
type Preferences struct {
	CurrencyFormat        string `json:"currencyFormat" yaml:"currency_format"`
	DateFormat            string `json:"dateFormat" yaml:"date_format"`
	ShowNotifications     bool   `json:"showNotifications" yaml:"show_notifications"`
	DemoDataset           bool   `json:"demoDataset" yaml:"demo_dataset"`
	SelectedDataset       string `json:"selectedDataset" yaml:"selected_dataset"`
	ReduceMotion          bool   `json:"reduceMotion" yaml:"reduce_motion"`
	UseJPYDisplay         bool   `json:"useJPYDisplay" yaml:"use_jpy_display"`
	UseYYYYMMDDDateFormat bool   `json:"useYYYYMMDDDateFormat" yaml:"use_yyyymmdd_date_format"`
	MondayWeekStart       bool   `json:"mondayWeekStart" yaml:"monday_week_start"`
}

// Defaults returns the preferences of a fresh install. Formatting toggles
// default to Japanese conventions.
func Defaults() Preferences {
	return Preferences{
		CurrencyFormat:        "JPY",
		DateFormat:            "MM/dd/yyyy",
		ShowNotifications:     true,
		DemoDataset:           false,
		SelectedDataset:       finance.DatasetA.Short(),
		ReduceMotion:          false,
		UseJPYDisplay:         true,
		UseYYYYMMDDDateFormat: true,
		MondayWeekStart:       true,
	}
}

// Dataset returns the selected dataset variant, falling back to datasetA.
func (p Preferences) Dataset() finance.DatasetVariant {
	v, err := finance.ParseDatasetVariant(p.SelectedDataset)
	if err != nil {
		return finance.DatasetA
	}
	return v
}

// Validate checks p and normalizes SelectedDataset to its short form.
func (p *Preferences) Validate() error {
	if !finance.IsNonEmpty(p.CurrencyFormat) {
		return finance.ClientError("currencyFormat must not be empty")
	}
	if !finance.IsNonEmpty(p.DateFormat) {
		return finance.ClientError("dateFormat must not be empty")
	}
	v, err := finance.ParseDatasetVariant(p.SelectedDataset)
	if err != nil {
		return err
	}
	p.SelectedDataset = v.Short()
	return nil
}

type value interface {
	String() string
	Set(string) error
}

type stringValue struct{ p *string }

func (v stringValue) String() string     { return *v.p }
func (v stringValue) Set(s string) error { *v.p = s; return nil }

type boolValue struct{ p *bool }

func (v boolValue) String() string { return strconv.FormatBool(*v.p) }
func (v boolValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*v.p = b
	return nil
}

type field struct {
	key string
	val value
}

func (p *Preferences) fields() []field {
	return []field{
		{KeyCurrencyFormat, stringValue{&p.CurrencyFormat}},
		{KeyDateFormat, stringValue{&p.DateFormat}},
		{KeyShowNotifications, boolValue{&p.ShowNotifications}},
		{KeyDemoDataset, boolValue{&p.DemoDataset}},
		{KeySelectedDataset, stringValue{&p.SelectedDataset}},
		{KeyReduceMotion, boolValue{&p.ReduceMotion}},
		{KeyUseJPYDisplay, boolValue{&p.UseJPYDisplay}},
		{KeyUseYYYYMMDDDateFormat, boolValue{&p.UseYYYYMMDDDateFormat}},
		{KeyMondayWeekStart, boolValue{&p.MondayWeekStart}},
	}
}

// Keys lists every preference key, excluding VersionKey.
func Keys() []string {
	var p Preferences
	fields := p.fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// Load migrates s if needed and reads the preferences from it. Missing or
// unreadable values fall back to their defaults.
func Load(s Store) (Preferences, error) {
	if err := Migrate(s); err != nil {
		return Preferences{}, err
	}

	p := Defaults()
	for _, f := range p.fields() {
		raw, err := s.Get(f.key)
		if err == ErrKeyNotFound {
			continue
		} else if err != nil {
			return Preferences{}, errors.Wrap(err, "failed to read "+f.key)
		}

		// Keep the default already in place when the stored value is bad.
		if err := f.val.Set(raw); err != nil {
			log.Warn("ignoring malformed preference", log.Fields{
				"key":   f.key,
				"value": raw,
			}, log.Err(err))
		}
	}
	return p, nil
}

// Save writes every preference of p to s.
func Save(s Store, p Preferences) error {
	for _, f := range p.fields() {
		if err := s.Put(f.key, f.val.String()); err != nil {
			return errors.Wrap(err, "failed to write "+f.key)
		}
	}
	return nil
}

// Reset deletes every stored preference and returns the defaults.
func Reset(s Store) (Preferences, error) {
	if err := s.Delete(Keys()...); err != nil {
		return Preferences{}, errors.Wrap(err, "failed to reset preferences")
	}
	return Defaults(), nil
}
