package newsapi

import (
	"fmt"
	"strings"
)

// Category filters headlines and sources by topic.
type Category string

// Categories accepted by the API.
const (
	CategoryBusiness      Category = "business"
	CategoryEntertainment Category = "entertainment"
	CategoryGeneral       Category = "general"
	CategoryHealth        Category = "health"
	CategoryScience       Category = "science"
	CategorySports        Category = "sports"
	CategoryTechnology    Category = "technology"
)

var categories = map[Category]struct{}{
	CategoryBusiness:      {},
	CategoryEntertainment: {},
	CategoryGeneral:       {},
	CategoryHealth:        {},
	CategoryScience:       {},
	CategorySports:        {},
	CategoryTechnology:    {},
}

// ParseCategory maps a case-insensitive category name to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(s))
	if _, ok := categories[c]; !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Country is a two-letter ISO 3166-1 country code.
type Country string

// Countries supported by the top-headlines and sources endpoints.
const (
	CountryAE Country = "ae"
	CountryAR Country = "ar"
	CountryAT Country = "at"
	CountryAU Country = "au"
	CountryBE Country = "be"
	CountryBG Country = "bg"
	CountryBR Country = "br"
	CountryCA Country = "ca"
	CountryCH Country = "ch"
	CountryCN Country = "cn"
	CountryCO Country = "co"
	CountryCU Country = "cu"
	CountryCZ Country = "cz"
	CountryDE Country = "de"
	CountryEG Country = "eg"
	CountryFR Country = "fr"
	CountryGB Country = "gb"
	CountryGR Country = "gr"
	CountryHK Country = "hk"
	CountryHU Country = "hu"
	CountryID Country = "id"
	CountryIE Country = "ie"
	CountryIL Country = "il"
	CountryIN Country = "in"
	CountryIT Country = "it"
	CountryJP Country = "jp"
	CountryKR Country = "kr"
	CountryLT Country = "lt"
	CountryLV Country = "lv"
	CountryMA Country = "ma"
	CountryMX Country = "mx"
	CountryMY Country = "my"
	CountryNG Country = "ng"
	CountryNL Country = "nl"
	CountryNO Country = "no"
	CountryNZ Country = "nz"
	CountryPH Country = "ph"
	CountryPL Country = "pl"
	CountryPT Country = "pt"
	CountryRO Country = "ro"
	CountryRS Country = "rs"
	CountryRU Country = "ru"
	CountrySA Country = "sa"
	CountrySE Country = "se"
	CountrySG Country = "sg"
	CountrySI Country = "si"
	CountrySK Country = "sk"
	CountryTH Country = "th"
	CountryTR Country = "tr"
	CountryTW Country = "tw"
	CountryUA Country = "ua"
	CountryUS Country = "us"
	CountryVE Country = "ve"
	CountryZA Country = "za"
)

var countryCodes = map[Country]struct{}{
	CountryAE: {}, CountryAR: {}, CountryAT: {}, CountryAU: {}, CountryBE: {},
	CountryBG: {}, CountryBR: {}, CountryCA: {}, CountryCH: {}, CountryCN: {},
	CountryCO: {}, CountryCU: {}, CountryCZ: {}, CountryDE: {}, CountryEG: {},
	CountryFR: {}, CountryGB: {}, CountryGR: {}, CountryHK: {}, CountryHU: {},
	CountryID: {}, CountryIE: {}, CountryIL: {}, CountryIN: {}, CountryIT: {},
	CountryJP: {}, CountryKR: {}, CountryLT: {}, CountryLV: {}, CountryMA: {},
	CountryMX: {}, CountryMY: {}, CountryNG: {}, CountryNL: {}, CountryNO: {},
	CountryNZ: {}, CountryPH: {}, CountryPL: {}, CountryPT: {}, CountryRO: {},
	CountryRS: {}, CountryRU: {}, CountrySA: {}, CountrySE: {}, CountrySG: {},
	CountrySI: {}, CountrySK: {}, CountryTH: {}, CountryTR: {}, CountryTW: {},
	CountryUA: {}, CountryUS: {}, CountryVE: {}, CountryZA: {},
}

// ParseCountry maps a case-insensitive two-letter code to a Country.
func ParseCountry(s string) (Country, error) {
	c := Country(strings.ToLower(s))
	if _, ok := countryCodes[c]; !ok {
		return "", fmt.Errorf("unknown country code %q", s)
	}
	return c, nil
}

// Language is a two-letter ISO 639-1 language code.
type Language string

// Languages supported by the everything and sources endpoints.
const (
	LanguageAR Language = "ar"
	LanguageDE Language = "de"
	LanguageEN Language = "en"
	LanguageES Language = "es"
	LanguageFR Language = "fr"
	LanguageHE Language = "he"
	LanguageIT Language = "it"
	LanguageNL Language = "nl"
	LanguageNO Language = "no"
	LanguagePT Language = "pt"
	LanguageRU Language = "ru"
	LanguageSV Language = "sv"
	LanguageUD Language = "ud"
	LanguageZH Language = "zh"
)

var languageCodes = map[Language]struct{}{
	LanguageAR: {}, LanguageDE: {}, LanguageEN: {}, LanguageES: {},
	LanguageFR: {}, LanguageHE: {}, LanguageIT: {}, LanguageNL: {},
	LanguageNO: {}, LanguagePT: {}, LanguageRU: {}, LanguageSV: {},
	LanguageUD: {}, LanguageZH: {},
}

// ParseLanguage maps a case-insensitive two-letter code to a Language.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(s))
	if _, ok := languageCodes[l]; !ok {
		return "", fmt.Errorf("unknown language code %q", s)
	}
	return l, nil
}

// SortBy orders everything-search results.
type SortBy string

// Sort orders accepted by the everything endpoint.
const (
	SortByPublishedAt SortBy = "publishedAt"
	SortByRelevancy   SortBy = "relevancy"
	SortByPopularity  SortBy = "popularity"
)

// ParseSortBy maps a case-insensitive sort order name to a SortBy.
func ParseSortBy(s string) (SortBy, error) {
	switch strings.ToLower(s) {
	case "publishedat":
		return SortByPublishedAt, nil
	case "relevancy":
		return SortByRelevancy, nil
	case "popularity":
		return SortByPopularity, nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// SearchIn restricts which article fields a full-text search matches.
type SearchIn string

// Searchable article fields.
const (
	SearchInTitle       SearchIn = "title"
	SearchInDescription SearchIn = "description"
	SearchInContent     SearchIn = "content"
)

// ParseSearchIn maps a case-insensitive field name to a SearchIn.
func ParseSearchIn(s string) (SearchIn, error) {
	switch strings.ToLower(s) {
	case "title":
		return SearchInTitle, nil
	case "description":
		return SearchInDescription, nil
	case "content":
		return SearchInContent, nil
	}
	return "", fmt.Errorf("unknown search field %q", s)
}
