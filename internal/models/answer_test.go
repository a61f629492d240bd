package models

import "testing"

func TestAnswerChoiceID(t *testing.T) {
	answer := &Answer{Choices: []Choice{
		{ID: "rc_1", Content: []string{"first"}},
		{ID: "rc_2", Content: []string{"second"}},
	}}
	if got := answer.ChoiceID(); got != "rc_1" {
		t.Errorf("ChoiceID() = %q, want rc_1", got)
	}

	empty := &Answer{}
	if got := empty.ChoiceID(); got != "" {
		t.Errorf("ChoiceID() on empty answer = %q, want empty", got)
	}
}

func TestAnswerHasCode(t *testing.T) {
	if (&Answer{}).HasCode() {
		t.Error("HasCode() true without code")
	}
	if !(&Answer{Code: "print(1)\n"}).HasCode() {
		t.Error("HasCode() false with code")
	}
}

func TestIsPivotLanguage(t *testing.T) {
	for _, lang := range []string{"en", "english", "ko", "korean", "ja", "japanese"} {
		if !IsPivotLanguage(lang) {
			t.Errorf("IsPivotLanguage(%q) = false, want true", lang)
		}
	}
	for _, lang := range []string{"", "de", "fr", "EN"} {
		if IsPivotLanguage(lang) {
			t.Errorf("IsPivotLanguage(%q) = true, want false", lang)
		}
	}
}
