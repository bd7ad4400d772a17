package service

import (
	"fmt"

	"ulascansenturk/travel-info-service/internal/extract"
)

type CountryInfo struct {
	Name       extract.Value
	Region     extract.Value
	Subregion  extract.Value
	Population extract.Value
	Area       extract.Value
}

type CurrencyInfo struct {
	Name   extract.Value
	Symbol extract.Value
}

const rateInfoTemplate = "Rate from %s to %s: %.2f\n\n" +
	"Country Info:\n" +
	"\tName: %s\n" +
	"\tRegion: %s\n" +
	"\tSubregion: %s\n" +
	"\tPopulation: %s\n" +
	"\tArea: %s\n" +
	"Currency Info:\n" +
	"\tName: %s\n" +
	"\tSymbol: %s\n"

// FormatRateInfo renders a rate together with the source country and the
// destination currency. Absent values print as "null".
func FormatRateInfo(sourceCurrency, destinationCurrency string, rate float64, country CountryInfo, currency CurrencyInfo) string {
	return fmt.Sprintf(rateInfoTemplate,
		sourceCurrency, destinationCurrency, rate,
		country.Name, country.Region, country.Subregion, country.Population, country.Area,
		currency.Name, currency.Symbol,
	)
}
