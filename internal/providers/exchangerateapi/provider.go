package exchangerateapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsprov "github.com/SscSPs/currency_converter_app/internal/core/ports/providers"
)

// Provider fetches exchange rates over HTTP from a source returning the
// {base, rates} shape.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ratesResponse is the wire shape of the rate source.
type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// New creates a rate provider for the given endpoint.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Ensure implementation matches the port.
var _ portsprov.RateProvider = (*Provider)(nil)

// FetchRates requests all rates for the base currency and maps the response
// into a code-sorted table. All failure modes (transport, non-200 status,
// malformed body, empty rate set) wrap apperrors.ErrFetch.
func (p *Provider) FetchRates(ctx context.Context, base string) (*domain.RateTable, error) {
	endpoint := fmt.Sprintf("%s?base=%s", p.baseURL, url.QueryEscape(base))
	p.logger.Info("Fetching exchange rates", slog.String("url", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", apperrors.ErrFetch, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: rate source returned status %d: %s", apperrors.ErrFetch, resp.StatusCode, string(body))
	}

	var wire ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrFetch, err)
	}
	if len(wire.Rates) == 0 {
		return nil, fmt.Errorf("%w: rate source returned no rates", apperrors.ErrFetch)
	}

	return mapResponse(wire), nil
}

// mapResponse turns the wire map into the code-sorted rate table.
func mapResponse(wire ratesResponse) *domain.RateTable {
	codes := make([]string, 0, len(wire.Rates))
	for code := range wire.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rates := make([]domain.CurrencyRate, len(codes))
	for i, code := range codes {
		rates[i] = domain.CurrencyRate{Currency: code, Rate: wire.Rates[code]}
	}

	return &domain.RateTable{
		Base:      wire.Base,
		Rates:     rates,
		FetchedAt: time.Now(),
	}
}
