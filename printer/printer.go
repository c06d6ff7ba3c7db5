package printer

import (
	"fmt"
	"strings"

	"github.com/dball/tomlval/types"
)

// Config controls printing behavior
type Config struct {
	// Canonical ignores the raw source text of values
	Canonical bool
}

// PrintStr prints values in their canonical form. Values carry no source
// text, so the output is canonical whatever the config says.
func PrintStr(config Config, value types.Value) string {
	switch v := value.(type) {
	case types.Integer:
		return v.String()
	case types.String:
		return printString(v)
	case types.Boolean:
		if v {
			return "true"
		}
		return "false"
	case error:
		return printString(types.String(v.Error()))
	default:
		return fmt.Sprintf("#UNKNOWN: %v", value)
	}
}

// PrintDocument prints each line as read, rendering only values without raw
// text canonically
func PrintDocument(config Config, doc types.Document) string {
	var sb strings.Builder
	var last string
	for i := 0; i < doc.Len(); i++ {
		if last != "" && !strings.HasSuffix(last, "\n") {
			sb.WriteRune('\n')
		}
		last = printLine(config, doc.Line(i))
		sb.WriteString(last)
	}
	return sb.String()
}

func printLine(config Config, line types.Line) string {
	if !line.IsAssignment() {
		return line.Raw
	}
	text := line.Raw
	if config.Canonical || text == "" {
		text = PrintStr(config, line.Value)
	}
	return line.Lead + text + line.Trail
}

// doublequotes, newlines, tabs and backslashes are translated into their
// escaped representations (the reverse of the reader)
func printString(s types.String) string {
	var sb strings.Builder
	sb.WriteRune('"')
	for _, r := range string(s) {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteRune('"')
	return sb.String()
}
