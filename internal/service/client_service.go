package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"ulascansenturk/travel-info-service/internal/extract"
	"ulascansenturk/travel-info-service/internal/providers"
)

// Query is what the user typed into the form. It lives for one action.
type Query struct {
	Country     string
	City        string
	Destination string
}

// ValidationError means required input was missing and nothing was fetched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type ClientService interface {
	GetWeather(ctx context.Context, query Query) (string, error)
	GetRate(ctx context.Context, query Query) (string, error)
	GetCentralBankRate(ctx context.Context, query Query) (string, error)
}

type clientService struct {
	factory      providers.Factory
	extractor    extract.Extractor
	homeCurrency string
}

func NewClientService(factory providers.Factory, extractor extract.Extractor, homeCurrency string) ClientService {
	if extractor == nil {
		extractor = extract.PathExtractor{}
	}
	return &clientService{
		factory:      factory,
		extractor:    extractor,
		homeCurrency: homeCurrency,
	}
}

func (s *clientService) GetWeather(ctx context.Context, query Query) (string, error) {
	if blank(query.Country) || blank(query.City) {
		return "", &ValidationError{Message: "Please enter a country name and city name"}
	}

	zerolog.Ctx(ctx).Info().Str("country", query.Country).Str("city", query.City).Msg("weather requested")

	body, err := s.factory.ForCountry(query.Country).GetWeather(ctx, query.City)
	if err != nil {
		return "", fmt.Errorf("failed to get weather: %w", err)
	}

	description := s.extractor.Lookup(body, extract.WeatherDescription)
	return fmt.Sprintf("Weather in %s: %s", query.City, description), nil
}

func (s *clientService) GetRate(ctx context.Context, query Query) (string, error) {
	if blank(query.Country) || blank(query.Destination) {
		return "", &ValidationError{Message: "Please enter a country name and country destination"}
	}

	zerolog.Ctx(ctx).Info().Str("country", query.Country).Str("destination", query.Destination).Msg("exchange rate requested")

	web := s.factory.ForCountry(query.Country)

	destinationCurrency, err := web.GetCurrencyCodeByCountry(ctx, query.Destination)
	if err != nil {
		return "", fmt.Errorf("failed to resolve destination currency: %w", err)
	}
	destinationCode, ok := destinationCurrency.Get()
	if !ok {
		return "", fmt.Errorf("%w for country %q", providers.ErrCurrencyNotFound, query.Destination)
	}

	sourceCurrency, err := web.GetCurrencyCodeByCountry(ctx, query.Country)
	if err != nil {
		return "", fmt.Errorf("failed to resolve source currency: %w", err)
	}

	rate, err := web.GetRateFor(ctx, destinationCode)
	if err != nil {
		return "", fmt.Errorf("failed to get exchange rate: %w", err)
	}

	return s.countryAndCurrencyInfo(ctx, web, query.Country, sourceCurrency, destinationCode, rate)
}

func (s *clientService) GetCentralBankRate(ctx context.Context, query Query) (string, error) {
	if blank(query.Country) {
		return "", &ValidationError{Message: "Please enter a country name"}
	}

	zerolog.Ctx(ctx).Info().Str("country", query.Country).Msg("central bank rate requested")

	web := s.factory.ForCountry(query.Country)

	rate, err := web.GetCentralBankRate(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get central bank rate: %w", err)
	}

	sourceCurrency, err := web.GetCurrencyCodeByCountry(ctx, query.Country)
	if err != nil {
		return "", fmt.Errorf("failed to resolve source currency: %w", err)
	}

	return s.countryAndCurrencyInfo(ctx, web, query.Country, sourceCurrency, s.homeCurrency, rate)
}

func (s *clientService) countryAndCurrencyInfo(
	ctx context.Context,
	web providers.WebService,
	country string,
	sourceCurrency extract.Value,
	destinationCode string,
	rate float64,
) (string, error) {
	countryBody, err := web.GetCountryInfo(ctx, country)
	if err != nil {
		return "", fmt.Errorf("failed to get country info: %w", err)
	}

	currencyBody, err := web.GetCurrencyInfo(ctx, destinationCode)
	if err != nil {
		return "", fmt.Errorf("failed to get currency info: %w", err)
	}

	countryInfo := CountryInfo{
		Name:       s.extractor.Lookup(countryBody, extract.CountryName),
		Region:     s.extractor.Lookup(countryBody, extract.CountryRegion),
		Subregion:  s.extractor.Lookup(countryBody, extract.CountrySubregion),
		Population: s.extractor.Lookup(countryBody, extract.CountryPopulation),
		Area:       s.extractor.Lookup(countryBody, extract.CountryArea),
	}
	currencyInfo := CurrencyInfo{
		Name:   s.extractor.Lookup(currencyBody, extract.CurrencyName(destinationCode)),
		Symbol: s.extractor.Lookup(currencyBody, extract.CurrencySymbol(destinationCode)),
	}

	return FormatRateInfo(sourceCurrency.String(), destinationCode, rate, countryInfo, currencyInfo), nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
