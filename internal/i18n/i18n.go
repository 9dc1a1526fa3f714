package i18n

// Language selects one of the three supported locales. The app ships
// Japanese-first.
type Language string

const (
	LangJA Language = "ja"
	LangEN Language = "en"
	LangUZ Language = "uz"
)

const DefaultLanguage = LangJA

func ValidLanguage(l Language) bool {
	return l == LangJA || l == LangEN || l == LangUZ
}

func Languages() []Language {
	return []Language{LangJA, LangEN, LangUZ}
}

// T looks up key in the given locale. A missing key resolves to the key
// itself so an incomplete table never breaks rendering.
func T(lang Language, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[DefaultLanguage]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

// Table returns a copy of the full key→string table for lang.
func Table(lang Language) map[string]string {
	table, ok := translations[lang]
	if !ok {
		table = translations[DefaultLanguage]
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
