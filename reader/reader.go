package reader

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dball/tomlval/types"
)

var assignRegexp = regexp.MustCompile(`^(\s*([A-Za-z0-9_-]+)\s*=[ \t]*)(.*)$`)

var triviaRegexp = regexp.MustCompile(`^\s*(#.*)?$`)

var trailRegexp = regexp.MustCompile(`^[ \t]*(#.*)?$`)

// Error is a reader error
type Error struct {
	Line    int
	Message string
	Err     error
}

func (err Error) Unwrap() error { return err.Err }

func (err Error) String() string {
	if err.Line > 0 {
		return fmt.Sprintf("reader error: line %d: %v: %v", err.Line, err.Message, err.Err)
	}
	return fmt.Sprintf("reader error: %v: %v", err.Message, err.Err)
}

func (err Error) Error() string {
	return err.String()
}

// ReadStr reads a single scalar literal
func ReadStr(s string) (types.Value, error) {
	return readAtom(strings.TrimSpace(s))
}

// ReadDocument reads key = value lines, keeping every byte of layout so an
// unmodified document prints back exactly as read
func ReadDocument(s string) (types.Document, error) {
	var lines []types.Line
	for n, text := range strings.SplitAfter(s, "\n") {
		if text == "" {
			continue
		}
		body, eol := splitEOL(text)
		line, err := readLine(body)
		if err != nil {
			err.Line = n + 1
			return types.Document{}, *err
		}
		if line.IsAssignment() {
			line.Trail += eol
		} else {
			line.Raw += eol
		}
		lines = append(lines, line)
	}
	return types.NewDocument(lines...), nil
}

func splitEOL(text string) (string, string) {
	switch {
	case strings.HasSuffix(text, "\r\n"):
		return text[:len(text)-2], "\r\n"
	case strings.HasSuffix(text, "\n"):
		return text[:len(text)-1], "\n"
	default:
		return text, ""
	}
}

func readLine(text string) (types.Line, *Error) {
	if triviaRegexp.MatchString(text) {
		return types.Line{Raw: text}, nil
	}
	match := assignRegexp.FindStringSubmatch(text)
	if match == nil {
		return types.Line{}, &Error{Message: "Expected key = value"}
	}
	lead, key, rest := match[1], match[2], match[3]
	raw, trail, err := splitValue(rest)
	if err != nil {
		return types.Line{}, err
	}
	if !trailRegexp.MatchString(trail) {
		return types.Line{}, &Error{Message: "Unexpected text after value: " + trail}
	}
	value, readErr := readAtom(raw)
	if readErr != nil {
		return types.Line{}, &Error{Message: "Invalid value for " + key, Err: readErr}
	}
	return types.Line{Key: key, Value: value, Lead: lead, Raw: raw, Trail: trail}, nil
}

// splitValue separates the value token from whatever follows it
func splitValue(rest string) (string, string, *Error) {
	if strings.HasPrefix(rest, `"`) {
		var escaping bool
		for i := 1; i < len(rest); i++ {
			switch {
			case escaping:
				escaping = false
			case rest[i] == '\\':
				escaping = true
			case rest[i] == '"':
				return rest[:i+1], rest[i+1:], nil
			}
		}
		return "", "", &Error{Message: "String quotes are unbalanced"}
	}
	end := strings.IndexAny(rest, " \t#")
	if end < 0 {
		end = len(rest)
	}
	if end == 0 {
		return "", "", &Error{Message: "Missing value"}
	}
	return rest[:end], rest[end:], nil
}

// Tokenize splits s into literal tokens on spaces and tabs. Quoted strings
// are kept whole, spaces included.
func Tokenize(s string) ([]string, error) {
	var tokens []string
	rest := strings.TrimLeft(s, " \t")
	for rest != "" {
		token, tail, err := splitValue(rest)
		if err != nil {
			return nil, *err
		}
		tokens = append(tokens, token)
		rest = strings.TrimLeft(tail, " \t")
	}
	return tokens, nil
}

func readAtom(token string) (types.Value, error) {
	if token == "" {
		return nil, Error{Message: "Unexpected end of input reading value"}
	}
	switch token {
	case "true":
		return types.Boolean(true), nil
	case "false":
		return types.Boolean(false), nil
	}
	if token[0] == '"' {
		return parseString([]rune(token))
	}
	value, err := types.ParseInteger(token)
	if err != nil {
		return nil, Error{Message: "Unparseable integer", Err: err}
	}
	return value, nil
}

func parseString(runes []rune) (types.Value, error) {
	last := len(runes) - 1
	if last == 0 || runes[last] != '"' {
		return nil, Error{Message: "String quotes are unbalanced"}
	}
	var result []rune
	var escaping bool
	for _, r := range runes[1:last] {
		if !escaping {
			if r == '\\' {
				escaping = true
			} else {
				result = append(result, r)
			}
		} else {
			switch r {
			case '\\':
				result = append(result, r)
			case '"':
				result = append(result, r)
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			default:
				return nil, Error{Message: "String escape sequence is invalid"}
			}
			escaping = false
		}
	}
	if escaping {
		return nil, Error{Message: "String slashes are unbalanced"}
	}
	return types.String(string(result)), nil
}
