package renderer

import (
	"regexp"

	"github.com/leonelquinteros/gotext"
)

// Markup functions understood by every renderer, written FUNCTION{operand}.
const (
	MarkupGT     = "GT"     // translation key, looked up with gotext
	MarkupItem   = "ITEM"   // a card label
	MarkupAction = "ACTION" // a command or button name
	MarkupOK     = "OK"     // a correct step
	MarkupWrong  = "WRONG"  // an incorrect step
)

var regexpStringFunctions = regexp.MustCompile(`([A-Z][A-Z_]*){([^{}]+)}`)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet,
// since keys are looked up dynamically from markup.
var dynamicGet = gotext.Get

// Segment is one run of text. Func is empty for plain text.
type Segment struct {
	Func string
	Text string
}

// ParseMarkup splits msg into plain and marked-up segments. GT{} operands
// are translated; unknown functions are kept as plain text, braces included.
func ParseMarkup(msg string) []Segment {
	var segments []Segment
	last := 0
	for _, m := range regexpStringFunctions.FindAllStringSubmatchIndex(msg, -1) {
		if m[0] > last {
			segments = append(segments, Segment{Text: msg[last:m[0]]})
		}
		function := msg[m[2]:m[3]]
		operand := msg[m[4]:m[5]]
		switch function {
		case MarkupGT:
			segments = append(segments, Segment{Text: dynamicGet(operand)})
		case MarkupItem, MarkupAction, MarkupOK, MarkupWrong:
			segments = append(segments, Segment{Func: function, Text: operand})
		default:
			segments = append(segments, Segment{Text: msg[m[0]:m[1]]})
		}
		last = m[1]
	}
	if last < len(msg) {
		segments = append(segments, Segment{Text: msg[last:]})
	}
	return segments
}

// PlainText strips markup from msg.
func PlainText(msg string) string {
	out := ""
	for _, s := range ParseMarkup(msg) {
		out += s.Text
	}
	return out
}
