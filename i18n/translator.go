package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須フィールドが不足しています"
		case "unknown_key":
			return "未知のフィールドです"
		case "malformed_schema":
			return "スキーマが不正です"
		case "literal_mismatch":
			return "リテラルが一致しません"
		case "invalid_enum":
			return "許可された値ではありません"
		case "union_exhausted":
			return "どのユニオン候補にも一致しません"
		case "arity_mismatch":
			return "要素数が一致しません"
		case "unsupported_kind":
			return "サポートされないフィールド型です"
		case "unclassifiable":
			return "変換できない値です"
		case "unknown_record":
			return "未登録のレコード型です"
		case "parse_error":
			return "解析エラー"
		case "max_depth":
			return "ネストが深すぎます"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required field missing"
		case "unknown_key":
			return "unknown field"
		case "malformed_schema":
			return "malformed schema"
		case "literal_mismatch":
			return "literal did not match"
		case "invalid_enum":
			return "value not in allowed literals"
		case "union_exhausted":
			return "did not match any union alternative"
		case "arity_mismatch":
			return "element count mismatch"
		case "unsupported_kind":
			return "unsupported field kind"
		case "unclassifiable":
			return "value cannot be rendered"
		case "unknown_record":
			return "record type not registered"
		case "parse_error":
			return "parse error"
		case "max_depth":
			return "nesting too deep"
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
