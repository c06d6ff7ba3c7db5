package core

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dball/tomlval/reader"
	"github.com/dball/tomlval/runtime"
	"github.com/dball/tomlval/types"
)

// Function is a builtin applied to read literals
type Function struct {
	Arity int
	Fn    func(args ...types.Value) (types.Value, error)
}

// Env binds builtin names to functions
type Env map[string]Function

func convertTo(notation types.Notation) Function {
	return Function{
		Arity: 1,
		Fn: func(args ...types.Value) (types.Value, error) {
			return runtime.Convert(args[0], notation)
		},
	}
}

func integerArg(value types.Value) (types.Integer, error) {
	integer, valid := value.(types.Integer)
	if !valid {
		return types.Integer{}, errors.New("integer required")
	}
	return integer, nil
}

// BuildEnv builds and returns a new environment with core functions
func BuildEnv() Env {
	env := Env{}
	env["dec"] = convertTo(types.NotationDecimal)
	env["hex"] = convertTo(types.NotationHexadecimal)
	env["oct"] = convertTo(types.NotationOctal)
	env["bin"] = convertTo(types.NotationBinary)
	env["upper"] = Function{
		Arity: 1,
		Fn: func(args ...types.Value) (types.Value, error) {
			integer, err := integerArg(args[0])
			if err != nil {
				return nil, err
			}
			return integer.WithCase(types.CaseUpper), nil
		},
	}
	env["lower"] = Function{
		Arity: 1,
		Fn: func(args ...types.Value) (types.Value, error) {
			integer, err := integerArg(args[0])
			if err != nil {
				return nil, err
			}
			return integer.WithCase(types.CaseLower), nil
		},
	}
	env["value"] = Function{
		Arity: 1,
		Fn: func(args ...types.Value) (types.Value, error) {
			integer, err := integerArg(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewInteger(integer.Value()), nil
		},
	}
	env["notation"] = Function{
		Arity: 1,
		Fn: func(args ...types.Value) (types.Value, error) {
			integer, err := integerArg(args[0])
			if err != nil {
				return nil, err
			}
			return types.String(integer.Notation().String()), nil
		},
	}
	env["="] = Function{
		Arity: 2,
		Fn: func(args ...types.Value) (types.Value, error) {
			return types.Boolean(types.Equals(args[0], args[1])), nil
		},
	}
	env["compare"] = Function{
		Arity: 2,
		Fn: func(args ...types.Value) (types.Value, error) {
			c, err := runtime.Compare(args[0], args[1])
			if err != nil {
				return nil, err
			}
			return types.NewInteger(int64(c)), nil
		},
	}
	return env
}

// Eval reads a line. A leading builtin name applies it to the literals that
// follow; otherwise the line is a single literal.
func Eval(env Env, line string) (types.Value, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, errors.New("empty input")
	}
	name, rest := trimmed, ""
	if end := strings.IndexAny(trimmed, " \t"); end >= 0 {
		name, rest = trimmed[:end], trimmed[end:]
	}
	fn, found := env[name]
	if !found {
		tokens, err := reader.Tokenize(trimmed)
		if err != nil {
			return nil, err
		}
		if len(tokens) > 1 {
			return nil, types.Undefined{Name: tokens[0]}
		}
		return reader.ReadStr(trimmed)
	}
	tokens, err := reader.Tokenize(rest)
	if err != nil {
		return nil, err
	}
	if len(tokens) != fn.Arity {
		return nil, errors.New(name + " requires " + plural(fn.Arity, "arg"))
	}
	args := make([]types.Value, 0, fn.Arity)
	for _, token := range tokens {
		arg, err := reader.ReadStr(token)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return fn.Fn(args...)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
