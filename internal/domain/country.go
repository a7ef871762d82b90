package domain

import "strings"

// countryCodes mapeia nomes e códigos comuns para ISO 3166 alpha-2
var countryCodes = map[string]string{
	"netherlands":     "NL",
	"the netherlands": "NL",
	"holland":         "NL",
	"nl":              "NL",

	"united states":            "US",
	"united states of america": "US",
	"usa":                      "US",
	"us":                       "US",
	"america":                  "US",

	"united kingdom": "GB",
	"uk":             "GB",
	"great britain":  "GB",
	"gb":             "GB",
	"england":        "GB",

	"canada":       "CA",
	"ca":           "CA",
	"australia":    "AU",
	"au":           "AU",
	"germany":      "DE",
	"de":           "DE",
	"france":       "FR",
	"fr":           "FR",
	"italy":        "IT",
	"it":           "IT",
	"spain":        "ES",
	"es":           "ES",
	"belgium":      "BE",
	"be":           "BE",
	"sweden":       "SE",
	"se":           "SE",
	"norway":       "NO",
	"no":           "NO",
	"denmark":      "DK",
	"dk":           "DK",
	"finland":      "FI",
	"fi":           "FI",
	"ireland":      "IE",
	"ie":           "IE",
	"switzerland":  "CH",
	"ch":           "CH",
	"austria":      "AT",
	"at":           "AT",
	"portugal":     "PT",
	"pt":           "PT",
	"greece":       "GR",
	"gr":           "GR",
	"poland":       "PL",
	"pl":           "PL",
	"japan":        "JP",
	"jp":           "JP",
	"china":        "CN",
	"cn":           "CN",
	"india":        "IN",
	"in":           "IN",
	"brazil":       "BR",
	"brasil":       "BR",
	"br":           "BR",
	"mexico":       "MX",
	"mx":           "MX",
	"south africa": "ZA",
	"za":           "ZA",
}

// NormalizeCountry converte nome ou código de país em ISO alpha-2.
// Entradas desconhecidas voltam em maiúsculas, sem validação.
func NormalizeCountry(country string) string {
	input := strings.ToLower(strings.TrimSpace(country))

	if code, ok := countryCodes[input]; ok {
		return code
	}

	return strings.ToUpper(input)
}
