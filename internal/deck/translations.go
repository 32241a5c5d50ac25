package deck

// Translation identifies one English edition offered by the content API.
type Translation struct {
	ID   string
	Name string
}

// DefaultTranslation is used when no translation is configured.
const DefaultTranslation = "en.sahih"

// Translations is the fixed list of selectable editions.
var Translations = []Translation{
	{ID: "en.sahih", Name: "Sahih International"},
	{ID: "en.pickthall", Name: "Pickthall"},
	{ID: "en.yusufali", Name: "Yusuf Ali"},
	{ID: "en.arberry", Name: "Arberry"},
	{ID: "en.hilali", Name: "Hilali & Khan"},
}

// TranslationName returns the display name for id, falling back to the
// id itself for unknown editions.
func TranslationName(id string) string {
	for _, t := range Translations {
		if t.ID == id {
			return t.Name
		}
	}
	return id
}

// NextTranslation cycles to the edition after id, wrapping around.
func NextTranslation(id string) string {
	for i, t := range Translations {
		if t.ID == id {
			return Translations[(i+1)%len(Translations)].ID
		}
	}
	return Translations[0].ID
}
