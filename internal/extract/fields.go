package extract

import (
	"fmt"
	"regexp"
)

var (
	WeatherDescription = Field{
		Name:    "description",
		Path:    "weather.0.description",
		Pattern: regexp.MustCompile(`"description":"([^"]*)"`),
	}

	CurrencyCode = Field{
		Name:     "currency_code",
		Path:     "0.currencies",
		FirstKey: true,
		Pattern:  regexp.MustCompile(`"currencies":\s*\{\s*"(\w+)"`),
	}

	ConversionRate = Field{
		Name:    "conversion_rate",
		Path:    "conversion_rate",
		Pattern: regexp.MustCompile(`"conversion_rate":(\d+\.?\d*)`),
	}

	CountryName = Field{
		Name:    "name",
		Path:    "0.name.common",
		Pattern: regexp.MustCompile(`"name":"([^"]*)"`),
	}

	CountryRegion = Field{
		Name:    "region",
		Path:    "0.region",
		Pattern: regexp.MustCompile(`"region":"([^"]*)"`),
	}

	CountrySubregion = Field{
		Name:    "subregion",
		Path:    "0.subregion",
		Pattern: regexp.MustCompile(`"subregion":"([^"]*)"`),
	}

	CountryPopulation = Field{
		Name:    "population",
		Path:    "0.population",
		Pattern: regexp.MustCompile(`"population":(\d*)`),
	}

	CountryArea = Field{
		Name:    "area",
		Path:    "0.area",
		Pattern: regexp.MustCompile(`"area":([\d.]*)`),
	}
)

// CurrencyName is the display name of currency code as listed by the
// countries-by-currency endpoint.
func CurrencyName(code string) Field {
	return Field{
		Name:    "currency_name",
		Path:    fmt.Sprintf("0.currencies.%s.name", escapePath(code)),
		Pattern: regexp.MustCompile(`"name":"([^"]*)"`),
	}
}

func CurrencySymbol(code string) Field {
	return Field{
		Name:    "currency_symbol",
		Path:    fmt.Sprintf("0.currencies.%s.symbol", escapePath(code)),
		Pattern: regexp.MustCompile(`"symbol":"([^"]*)"`),
	}
}

// CentralBankMid is the mid rate of the row with the given code in an NBP
// table A response.
func CentralBankMid(code string) Field {
	return Field{
		Name: "mid",
		Path: fmt.Sprintf(`0.rates.#(code==%q).mid`, code),
		Pattern: regexp.MustCompile(
			`\{"currency":\s*"[^"]*",\s*"code":\s*"` + regexp.QuoteMeta(code) + `",\s*"mid":\s*(\d+\.?\d*)\}`,
		),
	}
}

var pathSpecial = regexp.MustCompile(`([.*?|#@\\])`)

func escapePath(component string) string {
	return pathSpecial.ReplaceAllString(component, `\$1`)
}
