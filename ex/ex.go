package ex

import "fmt"

// Ex is an error with a code, possibly an error, and a context map
type Ex struct {
	Code    string
	Err     error
	Context map[string]interface{}
}

// With returns a copy of the ex carrying the cause and one context entry
func (ex Ex) With(err error, key string, value interface{}) Ex {
	context := make(map[string]interface{}, len(ex.Context)+1)
	for k, v := range ex.Context {
		context[k] = v
	}
	context[key] = value
	return Ex{Code: ex.Code, Err: err, Context: context}
}

// Is matches any ex with the same code
func (ex Ex) Is(target error) bool {
	that, valid := target.(Ex)
	if !valid {
		return false
	}
	return ex.Code == that.Code
}

func (ex Ex) Unwrap() error { return ex.Err }

func (ex Ex) String() string {
	if ex.Err == nil {
		return fmt.Sprintf("error: %v: %v", ex.Code, ex.Context)
	}
	return fmt.Sprintf("error: %v: %v: %v", ex.Code, ex.Err, ex.Context)
}

func (ex Ex) Error() string {
	return ex.String()
}
