package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"ulascansenturk/travel-info-service/internal/extract"
)

const redactedKey = "REDACTED"

// Options carries everything the accessor needs. API keys are injected here
// and never read from the environment by this package.
type Options struct {
	WeatherAPIKey  string
	ExchangeAPIKey string

	WeatherBaseURL   string
	CountriesBaseURL string
	ExchangeBaseURL  string
	NBPBaseURL       string

	HomeCountry string

	Extractor extract.Extractor
}

// Factory binds a WebService to a source country for the span of one action.
type Factory interface {
	ForCountry(country string) WebService
}

type WebService interface {
	GetWeather(ctx context.Context, city string) (string, error)
	GetCurrencyCodeByCountry(ctx context.Context, country string) (extract.Value, error)
	GetRateFor(ctx context.Context, currencyCode string) (float64, error)
	GetCentralBankRate(ctx context.Context) (float64, error)
	GetCountryInfo(ctx context.Context, country string) (string, error)
	GetCurrencyInfo(ctx context.Context, currencyCode string) (string, error)
}

type webServiceFactory struct {
	opts   Options
	client *http.Client
}

// NewWebServiceFactory uses client for all outbound calls; a nil client means
// http.DefaultClient. Call deadlines come from the caller's context.
func NewWebServiceFactory(opts Options, client *http.Client) Factory {
	if client == nil {
		client = http.DefaultClient
	}
	if opts.Extractor == nil {
		opts.Extractor = extract.PathExtractor{}
	}
	return &webServiceFactory{opts: opts, client: client}
}

func (f *webServiceFactory) ForCountry(country string) WebService {
	return &webService{
		country: country,
		opts:    f.opts,
		client:  f.client,
	}
}

type webService struct {
	country string
	opts    Options
	client  *http.Client
}

func (s *webService) GetWeather(ctx context.Context, city string) (string, error) {
	endpoint := func(key string) string {
		query := url.Values{}
		query.Set("q", city+","+s.country)
		query.Set("appid", key)
		return s.opts.WeatherBaseURL + "/data/2.5/weather?" + query.Encode()
	}

	return s.performRequest(ctx, endpoint(s.opts.WeatherAPIKey), endpoint(redactedKey))
}

func (s *webService) GetCurrencyCodeByCountry(ctx context.Context, country string) (extract.Value, error) {
	body, err := s.GetCountryInfo(ctx, country)
	if err != nil {
		return extract.Value{}, err
	}
	return s.opts.Extractor.Lookup(body, extract.CurrencyCode), nil
}

// GetRateFor returns how many units of the bound country's currency one unit
// of currencyCode buys.
func (s *webService) GetRateFor(ctx context.Context, currencyCode string) (float64, error) {
	sourceCode, err := s.sourceCurrencyCode(ctx)
	if err != nil {
		return 0, err
	}

	endpoint := func(key string) string {
		return fmt.Sprintf("%s/v6/%s/pair/%s/%s",
			s.opts.ExchangeBaseURL,
			url.PathEscape(key),
			url.PathEscape(currencyCode),
			url.PathEscape(sourceCode),
		)
	}

	body, err := s.performRequest(ctx, endpoint(s.opts.ExchangeAPIKey), endpoint(redactedKey))
	if err != nil {
		return 0, err
	}

	return parseRate(s.opts.Extractor.Lookup(body, extract.ConversionRate), "conversion_rate")
}

func (s *webService) GetCentralBankRate(ctx context.Context) (float64, error) {
	if strings.EqualFold(strings.TrimSpace(s.country), s.opts.HomeCountry) {
		return 1.0, nil
	}

	sourceCode, err := s.sourceCurrencyCode(ctx)
	if err != nil {
		return 0, err
	}

	body, err := s.performPublicRequest(ctx, s.opts.NBPBaseURL+"/api/exchangerates/tables/A/")
	if err != nil {
		return 0, err
	}

	rate, err := parseRate(s.opts.Extractor.Lookup(body, extract.CentralBankMid(sourceCode)), "mid")
	if err != nil {
		return 0, fmt.Errorf("no central bank rate for %s: %w", sourceCode, err)
	}
	return rate, nil
}

func (s *webService) GetCountryInfo(ctx context.Context, country string) (string, error) {
	return s.performPublicRequest(ctx, s.opts.CountriesBaseURL+"/v3.1/name/"+url.PathEscape(country))
}

func (s *webService) GetCurrencyInfo(ctx context.Context, currencyCode string) (string, error) {
	return s.performPublicRequest(ctx, s.opts.CountriesBaseURL+"/v3.1/currency/"+url.PathEscape(currencyCode))
}

func (s *webService) sourceCurrencyCode(ctx context.Context) (string, error) {
	value, err := s.GetCurrencyCodeByCountry(ctx, s.country)
	if err != nil {
		return "", err
	}
	code, ok := value.Get()
	if !ok {
		return "", fmt.Errorf("%w for country %q", ErrCurrencyNotFound, s.country)
	}
	return code, nil
}

func (s *webService) performPublicRequest(ctx context.Context, endpoint string) (string, error) {
	return s.performRequest(ctx, endpoint, endpoint)
}

// performRequest calls endpoint. display is the same URL built with
// redactedKey in place of any API key; it is the only form that reaches logs
// and errors.
func (s *webService) performRequest(ctx context.Context, endpoint, display string) (string, error) {
	logger := zerolog.Ctx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		err = redactURLError(err, display)
		logger.Error().Err(err).Str("url", display).Msg("invalid upstream request")
		return "", &ConnectionError{URL: display, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		err = redactURLError(err, display)
		logger.Error().Err(err).Str("url", display).Msg("upstream request failed")
		return "", &ConnectionError{URL: display, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = redactURLError(err, display)
		logger.Error().Err(err).Str("url", display).Msg("failed to read upstream response")
		return "", &ConnectionError{URL: display, Err: err}
	}

	logger.Debug().Str("url", display).Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("upstream response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ConnectionError{URL: display, StatusCode: resp.StatusCode}
	}

	return string(body), nil
}

// redactURLError swaps the URL carried by a *url.Error for display. Parse and
// transport failures both report through *url.Error.
func redactURLError(err error, display string) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: display, Err: urlErr.Err}
}

func parseRate(value extract.Value, field string) (float64, error) {
	raw, ok := value.Get()
	if !ok {
		return 0, fmt.Errorf("%s: %w", field, ErrFieldMissing)
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number: %w", field, raw, err)
	}
	return rate, nil
}
