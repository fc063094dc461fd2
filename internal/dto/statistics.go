package dto

import (
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/i18n"
)

// StatisticResponse is one derived statistic. Name is the stable identifier;
// Label is its translation for the requested language.
type StatisticResponse struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Summary float64 `json:"summary"`
}

// StatisticsResponse carries the summaries together with the window they
// were derived over.
type StatisticsResponse struct {
	Window     string              `json:"window"`
	Statistics []StatisticResponse `json:"statistics"`
}

// ToStatisticsResponse converts the summaries, localizing labels.
func ToStatisticsResponse(window domain.TimeWindow, lang string, summaries []domain.StatisticSummary) StatisticsResponse {
	out := StatisticsResponse{
		Window:     string(window),
		Statistics: make([]StatisticResponse, len(summaries)),
	}
	for i, s := range summaries {
		out.Statistics[i] = StatisticResponse{
			Name:    s.Name,
			Label:   i18n.Label(lang, s.Name),
			Summary: s.Summary,
		}
	}
	return out
}
