package ai

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := map[string]string{
		`{"a":1}`:                           `{"a":1}`,
		"Here is the result: {\"a\":1}\n":   `{"a":1}`,
		"```json\n[{\"a\":1}]\n```":         `[{"a":1}]`,
		"no json here":                      "no json here",
		"prefix {\"a\":{\"b\":2}} trailing": `{"a":{"b":2}}`,
	}
	for in, want := range cases {
		if got := extractJSON(in); got != want {
			t.Errorf("extractJSON(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAnalyzeWindowImage_RequiresData(t *testing.T) {
	c := NewClient("key", "model")
	if _, err := c.AnalyzeWindowImage(t.Context(), ""); err == nil {
		t.Fatal("expected error for empty image data")
	}
}

func TestCompleteWithoutKey(t *testing.T) {
	c := NewClient("", "model")
	if _, err := c.Chat(t.Context(), "hello", nil); err == nil {
		t.Fatal("expected error when api key is missing")
	}
}
