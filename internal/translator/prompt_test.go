package translator

import "testing"

func TestExpandPrompt(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"all placeholders", "Translate {text} from {from} to {to}", "Translate Hello from en to zh"},
		{"repeated placeholders", "{to} {to}: {text} ({from}->{to})", "zh zh: Hello (en->zh)"},
		{"no placeholders", "just translate it", "just translate it"},
		{"empty template", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandPrompt(tt.template, "Hello", "en", "zh")
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExpandPrompt_TextContainingPlaceholder(t *testing.T) {
	// Placeholder-like sequences inside the translated text itself must not
	// be expanded recursively.
	got := ExpandPrompt("{text}", "literal {from} stays", "en", "zh")
	if got != "literal {from} stays" {
		t.Errorf("expected text preserved, got %q", got)
	}
}
