package deepl

import "strings"

// apiCodes maps catalog language codes to the representation the DeepL API
// expects. Codes absent from the table pass through unchanged so that a
// newer catalog entry keeps working without a client update.
var apiCodes = map[string]string{
	"ar": "AR",
	"bg": "BG",
	"cs": "CS",
	"da": "DA",
	"de": "DE",
	"el": "EL",
	"en": "EN",
	"es": "ES",
	"et": "ET",
	"fi": "FI",
	"fr": "FR",
	"hi": "HI",
	"hu": "HU",
	"id": "ID",
	"it": "IT",
	"ja": "JA",
	"ko": "KO",
	"lt": "LT",
	"lv": "LV",
	"nb": "NB",
	"nl": "NL",
	"no": "NB", // Norwegian maps to Norwegian Bokmål
	"pl": "PL",
	"pt": "PT",
	"ro": "RO",
	"ru": "RU",
	"sk": "SK",
	"sl": "SL",
	"sv": "SV",
	"tr": "TR",
	"uk": "UK",
	"zh": "ZH",
}

// apiCode converts a catalog code to DeepL's casing. Unknown codes are
// returned as-is for forward compatibility.
func apiCode(code string) string {
	if mapped, ok := apiCodes[strings.ToLower(code)]; ok {
		return mapped
	}
	return code
}
