package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "want" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "not_a_map":
			return "マッピングではありません"
		case "not_a_list":
			return "リストではありません"
		case "length_mismatch":
			return "リストの長さがスキーマと一致しません"
		case "required":
			return "必須フィールドが不足しています"
		case "unknown_key":
			return "未知のフィールドです"
		case "literal_mismatch":
			return "期待されるリテラル値と一致しません"
		case "enum_no_match":
			return "いずれの列挙値にも一致しません"
		case "conversion":
			return "値を変換できません"
		}
	default: // "en"
		switch code {
		case "not_a_map":
			return "expected a mapping"
		case "not_a_list":
			return "expected a list"
		case "length_mismatch":
			return "list length differs from schema"
		case "required":
			return "required field is missing"
		case "unknown_key":
			return "unknown field"
		case "literal_mismatch":
			return "value does not match the expected literal"
		case "enum_no_match":
			return "none of the enum values matches"
		case "conversion":
			return "cannot convert value"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
