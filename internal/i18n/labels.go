// Package i18n translates the statistic labels for presentation. The domain
// keeps the stable identifiers (Lowest/Highest/Average); translation is a
// lookup applied at response time, never stored.
package i18n

import "github.com/SscSPs/currency_converter_app/internal/core/domain"

// DefaultLanguage is used when no language is requested or the requested one
// is unknown.
const DefaultLanguage = "en"

var labels = map[string]map[string]string{
	"en": {
		domain.StatisticLowest:  "Lowest",
		domain.StatisticHighest: "Highest",
		domain.StatisticAverage: "Average",
	},
	"bg": {
		domain.StatisticLowest:  "Най-ниска",
		domain.StatisticHighest: "Най-висока",
		domain.StatisticAverage: "Средна",
	},
	"de": {
		domain.StatisticLowest:  "Niedrigster",
		domain.StatisticHighest: "Höchster",
		domain.StatisticAverage: "Durchschnitt",
	},
}

// Label returns the translated display label for a statistic identifier.
// Unknown languages fall back to English; unknown identifiers are returned
// as-is.
func Label(lang, name string) string {
	table, ok := labels[lang]
	if !ok {
		table = labels[DefaultLanguage]
	}
	if translated, ok := table[name]; ok {
		return translated
	}
	return name
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "bg", "de"}
}
