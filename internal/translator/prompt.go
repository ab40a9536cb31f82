package translator

import "strings"

// ExpandPrompt instantiates a prompt template, substituting every occurrence
// of the {text}, {from} and {to} placeholders.
func ExpandPrompt(template, text, from, to string) string {
	r := strings.NewReplacer(
		"{text}", text,
		"{from}", from,
		"{to}", to,
	)
	return r.Replace(template)
}
