package i18n_test

import (
	"testing"

	"github.com/recjson/recjson/i18n"
)

func TestT_DefaultEnglish(t *testing.T) {
	if got := i18n.T("literal_mismatch", nil); got != "literal did not match" {
		t.Fatalf("T = %q", got)
	}
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown codes should echo the code, got %q", got)
	}
}

func TestSetLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	if got := i18n.T("union_exhausted", nil); got == "union_exhausted" || got == "did not match any union alternative" {
		t.Fatalf("expected Japanese message, got %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "CODE:" + code }

func TestSetTranslator(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("required", nil); got != "CODE:required" {
		t.Fatalf("T = %q", got)
	}
}
