package i18n

// Translator retrieves localized messages for error codes. data provides
// optional metadata to embed in the message (for example, "expected" or
// "index").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	get := func(k string) string {
		if data == nil {
			return ""
		}
		return data[k]
	}
	switch t.lang {
	case "ja":
		switch code {
		case "type_mismatch":
			return get("expected") + " を期待しましたが " + get("got") + " でした"
		case "error_at_index":
			return "インデックス " + get("index") + " で"
		case "error_at_property":
			return "プロパティ " + get("key") + " で"
		}
	default: // "en"
		switch code {
		case "type_mismatch":
			return "expected " + get("expected") + " but got " + get("got")
		case "error_at_index":
			return "at index " + get("index")
		case "error_at_property":
			return "at property " + get("key")
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

// T resolves a message for code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
