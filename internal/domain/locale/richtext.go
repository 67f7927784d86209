package locale

import "regexp"

// Span is a run of poster text, optionally rendered bold by the external
// rasterizer.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// Bold spans never cross line boundaries; "." deliberately excludes "\n".
var boldSpanPattern = regexp.MustCompile(`\*\*.+?\*\*`)

// Spans tokenizes a content string containing **bold** markers into plain
// and emphasized runs. The split is a single non-recursive pass: the first
// matching pair wins, and unmatched or nested "**" sequences stay literal.
// There is no escaping mechanism.
func Spans(content string) []Span {
	var spans []Span
	rest := content
	for {
		loc := boldSpanPattern.FindStringIndex(rest)
		if loc == nil {
			break
		}
		if loc[0] > 0 {
			spans = append(spans, Span{Text: rest[:loc[0]]})
		}
		spans = append(spans, Span{Text: rest[loc[0]+2 : loc[1]-2], Bold: true})
		rest = rest[loc[1]:]
	}
	if rest != "" {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}
