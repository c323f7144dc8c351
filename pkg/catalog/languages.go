package catalog

// builtin lists the languages the translation provider accepts, in the order
// they are shown by the list command. Names and codes are both valid lookup
// tokens.
var builtin = []Entry{
	{Name: "Arabic", Code: "ar"},
	{Name: "Bulgarian", Code: "bg"},
	{Name: "Chinese", Code: "zh"},
	{Name: "Czech", Code: "cs"},
	{Name: "Danish", Code: "da"},
	{Name: "Dutch", Code: "nl"},
	{Name: "English", Code: "en"},
	{Name: "Estonian", Code: "et"},
	{Name: "Finnish", Code: "fi"},
	{Name: "French", Code: "fr"},
	{Name: "German", Code: "de"},
	{Name: "Greek", Code: "el"},
	{Name: "Hungarian", Code: "hu"},
	{Name: "Indonesian", Code: "id"},
	{Name: "Italian", Code: "it"},
	{Name: "Japanese", Code: "ja"},
	{Name: "Korean", Code: "ko"},
	{Name: "Latvian", Code: "lv"},
	{Name: "Lithuanian", Code: "lt"},
	{Name: "Norwegian", Code: "nb"},
	{Name: "Polish", Code: "pl"},
	{Name: "Portuguese", Code: "pt"},
	{Name: "Romanian", Code: "ro"},
	{Name: "Russian", Code: "ru"},
	{Name: "Slovak", Code: "sk"},
	{Name: "Slovenian", Code: "sl"},
	{Name: "Spanish", Code: "es"},
	{Name: "Swedish", Code: "sv"},
	{Name: "Turkish", Code: "tr"},
	{Name: "Ukrainian", Code: "uk"},
	{Name: "Hindi", Code: "hi"},
}

var defaultCatalog = MustNew(builtin...)

// Default returns the built-in catalog. The same instance is shared by all
// callers; it is immutable and safe for concurrent use.
func Default() *Catalog {
	return defaultCatalog
}
