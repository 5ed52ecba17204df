// Package latex renders an interpreted document to LaTeX source.
package latex

import (
	"strings"
)

// Special characters that need escaping in LaTeX text content. The
// replacer works in a single pass, so the backslashes it inserts are not
// escaped again.
var latexEscaper = strings.NewReplacer(
	`\`, `\backslash `,
	`#`, `\#`,
	`_`, `\_`,
	`^`, `\^{}`,
	`{`, `\{`,
	`}`, `\}`,
)

// escape makes a text string safe for inclusion in LaTeX output.
func escape(s string) string {
	return latexEscaper.Replace(s)
}
