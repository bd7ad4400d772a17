package providers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"ulascansenturk/travel-info-service/internal/extract"
	"ulascansenturk/travel-info-service/internal/providers"

	"github.com/stretchr/testify/suite"
)

const (
	weatherKey  = "test_weather_key"
	exchangeKey = "test_exchange_key"
)

var countryBodies = map[string]string{
	"Poland":  `[{"name":{"common":"Poland"},"currencies":{"PLN":{"name":"Polish złoty","symbol":"zł"}},"region":"Europe","subregion":"Central Europe","population":37950802,"area":312679.0}]`,
	"Germany": `[{"name":{"common":"Germany"},"currencies":{"EUR":{"name":"Euro","symbol":"€"}},"region":"Europe","subregion":"Western Europe","population":83240525,"area":357114.0}]`,
	"Japan":   `[{"name":{"common":"Japan"},"currencies":{"JPY":{"name":"Japanese yen","symbol":"¥"}},"region":"Asia","subregion":"Eastern Asia","population":125836021,"area":377930.0}]`,
	"Nowhere": `[{"name":{"common":"Nowhere"},"region":"Antarctic"}]`,
}

const nbpTable = `[{"table":"A","no":"201/A/NBP/2026","effectiveDate":"2026-10-16","rates":[{"currency":"euro","code":"EUR","mid":4.2291},{"currency":"dolar amerykański","code":"USD","mid":3.6512}]}]`

type WebServiceTestSuite struct {
	suite.Suite
	server   *httptest.Server
	hits     atomic.Int32
	lastPath atomic.Value
	factory  providers.Factory
}

func (s *WebServiceTestSuite) SetupTest() {
	s.hits.Store(0)
	s.server = httptest.NewServer(http.HandlerFunc(s.upstream))
	s.factory = s.newFactory(extract.PathExtractor{})
}

func (s *WebServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *WebServiceTestSuite) newFactory(extractor extract.Extractor) providers.Factory {
	return providers.NewWebServiceFactory(providers.Options{
		WeatherAPIKey:    weatherKey,
		ExchangeAPIKey:   exchangeKey,
		WeatherBaseURL:   s.server.URL,
		CountriesBaseURL: s.server.URL,
		ExchangeBaseURL:  s.server.URL,
		NBPBaseURL:       s.server.URL,
		HomeCountry:      "Poland",
		Extractor:        extractor,
	}, &http.Client{Timeout: 5 * time.Second})
}

func (s *WebServiceTestSuite) upstream(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)
	s.lastPath.Store(r.URL.RequestURI())

	switch {
	case r.URL.Path == "/data/2.5/weather":
		if r.URL.Query().Get("appid") != weatherKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Query().Get("q") {
		case "Warsaw,Poland":
			w.Write([]byte(`{"weather":[{"id":800,"main":"Clear","description":"clear sky"}],"name":"Warsaw"}`))
		case "Atlantis,Poland":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		default:
			w.Write([]byte(`{"cod":200}`))
		}
	case strings.HasPrefix(r.URL.Path, "/v3.1/name/"):
		body, ok := countryBodies[strings.TrimPrefix(r.URL.Path, "/v3.1/name/")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":404,"message":"Not Found"}`))
			return
		}
		w.Write([]byte(body))
	case r.URL.Path == "/v3.1/currency/EUR":
		w.Write([]byte(`[{"name":{"common":"Austria"},"currencies":{"EUR":{"name":"Euro","symbol":"€"}}}]`))
	case r.URL.Path == "/v6/"+exchangeKey+"/pair/EUR/PLN":
		w.Write([]byte(`{"result":"success","base_code":"EUR","target_code":"PLN","conversion_rate":4.32}`))
	case r.URL.Path == "/v6/"+exchangeKey+"/pair/JPY/PLN":
		w.Write([]byte(`{"result":"success","base_code":"JPY","target_code":"PLN","conversion_rate":"n/a"}`))
	case strings.HasPrefix(r.URL.Path, "/v6/"+exchangeKey+"/pair/"):
		w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	case r.URL.Path == "/api/exchangerates/tables/A/":
		w.Write([]byte(nbpTable))
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *WebServiceTestSuite) TestGetWeather() {
	body, err := s.factory.ForCountry("Poland").GetWeather(context.Background(), "Warsaw")

	s.NoError(err)
	s.Contains(body, `"description":"clear sky"`)
	s.Equal(int32(1), s.hits.Load())
}

func (s *WebServiceTestSuite) TestGetWeatherNotFoundIsConnectionError() {
	_, err := s.factory.ForCountry("Poland").GetWeather(context.Background(), "Atlantis")

	var connErr *providers.ConnectionError
	s.Require().ErrorAs(err, &connErr)
	s.Equal(http.StatusNotFound, connErr.StatusCode)
	s.NotContains(err.Error(), weatherKey)
	s.Contains(err.Error(), "REDACTED")
}

func (s *WebServiceTestSuite) TestGetCurrencyCodeByCountry() {
	code, err := s.factory.ForCountry("Poland").GetCurrencyCodeByCountry(context.Background(), "Germany")

	s.NoError(err)
	s.Equal(extract.Found("EUR"), code)
}

func (s *WebServiceTestSuite) TestGetCurrencyCodeByCountryAbsent() {
	code, err := s.factory.ForCountry("Poland").GetCurrencyCodeByCountry(context.Background(), "Nowhere")

	s.NoError(err)
	s.False(code.Present())
	s.Equal("null", code.String())
}

func (s *WebServiceTestSuite) TestGetRateFor() {
	rate, err := s.factory.ForCountry("Poland").GetRateFor(context.Background(), "EUR")

	s.NoError(err)
	s.InEpsilon(4.32, rate, 1e-9)
	s.Equal("/v6/"+exchangeKey+"/pair/EUR/PLN", s.lastPath.Load())
	s.Equal(int32(2), s.hits.Load())
}

func (s *WebServiceTestSuite) TestGetRateForWithPatternExtractor() {
	rate, err := s.newFactory(extract.PatternExtractor{}).ForCountry("Poland").GetRateFor(context.Background(), "EUR")

	s.NoError(err)
	s.InEpsilon(4.32, rate, 1e-9)
}

func (s *WebServiceTestSuite) TestGetRateForMissingField() {
	_, err := s.factory.ForCountry("Poland").GetRateFor(context.Background(), "GBP")

	s.ErrorIs(err, providers.ErrFieldMissing)
}

func (s *WebServiceTestSuite) TestGetRateForNonNumeric() {
	_, err := s.factory.ForCountry("Poland").GetRateFor(context.Background(), "JPY")

	s.Error(err)
	s.Contains(err.Error(), "is not a number")
}

func (s *WebServiceTestSuite) TestGetRateForUnknownSourceCurrency() {
	_, err := s.factory.ForCountry("Nowhere").GetRateFor(context.Background(), "EUR")

	s.ErrorIs(err, providers.ErrCurrencyNotFound)
	s.Equal(int32(1), s.hits.Load())
}

func (s *WebServiceTestSuite) TestGetCentralBankRateHomeCountry() {
	rate, err := s.factory.ForCountry("Poland").GetCentralBankRate(context.Background())

	s.NoError(err)
	s.Equal(1.0, rate)
	s.Equal(int32(0), s.hits.Load())
}

func (s *WebServiceTestSuite) TestGetCentralBankRate() {
	for name, extractor := range map[string]extract.Extractor{
		"path":    extract.PathExtractor{},
		"pattern": extract.PatternExtractor{},
	} {
		s.Run(name, func() {
			rate, err := s.newFactory(extractor).ForCountry("Germany").GetCentralBankRate(context.Background())

			s.NoError(err)
			s.InEpsilon(4.2291, rate, 1e-9)
		})
	}
}

func (s *WebServiceTestSuite) TestGetCentralBankRateNoRow() {
	_, err := s.factory.ForCountry("Japan").GetCentralBankRate(context.Background())

	s.ErrorIs(err, providers.ErrFieldMissing)
	s.Contains(err.Error(), "no central bank rate for JPY")
}

func (s *WebServiceTestSuite) TestGetCountryAndCurrencyInfo() {
	svc := s.factory.ForCountry("Poland")

	countryBody, err := svc.GetCountryInfo(context.Background(), "Germany")
	s.NoError(err)
	s.Equal(countryBodies["Germany"], countryBody)

	currencyBody, err := svc.GetCurrencyInfo(context.Background(), "EUR")
	s.NoError(err)
	s.Contains(currencyBody, `"symbol":"€"`)
}

func (s *WebServiceTestSuite) TestUnknownCountryIsConnectionError() {
	_, err := s.factory.ForCountry("Poland").GetCountryInfo(context.Background(), "Narnia")

	var connErr *providers.ConnectionError
	s.ErrorAs(err, &connErr)
	s.Contains(err.Error(), "/v3.1/name/Narnia")
}

func (s *WebServiceTestSuite) TestServerDown() {
	s.server.Close()

	_, err := s.factory.ForCountry("Poland").GetCountryInfo(context.Background(), "Germany")

	var connErr *providers.ConnectionError
	s.Require().ErrorAs(err, &connErr)
	s.Zero(connErr.StatusCode)
	s.Contains(err.Error(), "connection error while connecting to")
}

func (s *WebServiceTestSuite) TestContextCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.factory.ForCountry("Poland").GetWeather(ctx, "Warsaw")

	s.Error(err)
	s.True(errors.Is(err, context.Canceled))
	s.NotContains(err.Error(), weatherKey)
}

func (s *WebServiceTestSuite) factoryWith(opts providers.Options) providers.Factory {
	if opts.WeatherBaseURL == "" {
		opts.WeatherBaseURL = s.server.URL
	}
	if opts.ExchangeBaseURL == "" {
		opts.ExchangeBaseURL = s.server.URL
	}
	opts.CountriesBaseURL = s.server.URL
	opts.NBPBaseURL = s.server.URL
	opts.HomeCountry = "Poland"
	return providers.NewWebServiceFactory(opts, &http.Client{Timeout: 5 * time.Second})
}

func (s *WebServiceTestSuite) TestMalformedWeatherURLHidesKey() {
	factory := s.factoryWith(providers.Options{
		WeatherAPIKey:  "s3cr3tkey",
		ExchangeAPIKey: exchangeKey,
		WeatherBaseURL: "http://bad host",
	})

	_, err := factory.ForCountry("Poland").GetWeather(context.Background(), "Warsaw")

	var connErr *providers.ConnectionError
	s.Require().ErrorAs(err, &connErr)
	s.NotContains(err.Error(), "s3cr3tkey")
	s.Contains(err.Error(), "appid=REDACTED")
	s.Contains(err.Error(), "invalid character")
	s.Zero(s.hits.Load())
}

func (s *WebServiceTestSuite) TestMalformedExchangeURLHidesKey() {
	factory := s.factoryWith(providers.Options{
		WeatherAPIKey:   weatherKey,
		ExchangeAPIKey:  "s3cr3tkey",
		ExchangeBaseURL: "http://bad host",
	})

	_, err := factory.ForCountry("Germany").GetRateFor(context.Background(), "JPY")

	var connErr *providers.ConnectionError
	s.Require().ErrorAs(err, &connErr)
	s.NotContains(err.Error(), "s3cr3tkey")
	s.Contains(connErr.URL, "/v6/REDACTED/pair/JPY/EUR")
}

func (s *WebServiceTestSuite) TestShortKeysLeaveMessagesIntact() {
	factory := s.factoryWith(providers.Options{
		WeatherAPIKey:  "a",
		ExchangeAPIKey: "e",
	})
	s.server.Close()

	_, err := factory.ForCountry("Poland").GetCountryInfo(context.Background(), "Germany")

	s.Require().Error(err)
	s.Contains(err.Error(), "connection error while connecting to")
	s.Contains(err.Error(), "/v3.1/name/Germany")
	s.Contains(err.Error(), "connection refused")
	s.NotContains(err.Error(), "REDACTED")
}

func (s *WebServiceTestSuite) TestShortWeatherKeyIsRedactedByPosition() {
	factory := s.factoryWith(providers.Options{
		WeatherAPIKey:  "a",
		ExchangeAPIKey: "e",
	})

	_, err := factory.ForCountry("Poland").GetWeather(context.Background(), "Atlantis")

	var connErr *providers.ConnectionError
	s.Require().ErrorAs(err, &connErr)
	s.Equal(http.StatusUnauthorized, connErr.StatusCode)
	s.Equal(s.server.URL+"/data/2.5/weather?appid=REDACTED&q=Atlantis%2CPoland", connErr.URL)
}

func TestWebServiceSuite(t *testing.T) {
	suite.Run(t, new(WebServiceTestSuite))
}
