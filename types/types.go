package types

import (
	"fmt"
	"hash"

	"github.com/benbjohnson/immutable"
	"github.com/spaolacci/murmur3"
)

// Value - the root type of all toml values
type Value interface{}

// HasSimpleValueEquality - is a type which can compare itself to other values
type HasSimpleValueEquality interface {
	ValueEquals(Value) bool
	hashBytes() []byte
}

func hashAnyValue(hash *hash.Hash32, value *Value) {
	switch cast := (*value).(type) {
	case HasSimpleValueEquality:
		(*hash).Write(cast.hashBytes())
	default:
		(*hash).Write([]byte(fmt.Sprintf("%T", cast)))
	}
}

// Hash computes a murmur3 hash of the given value
func Hash(value Value) uint32 {
	hash := murmur3.New32()
	hashAnyValue(&hash, &value)
	return hash.Sum32()
}

type hasher struct{}

func (h hasher) Hash(key interface{}) uint32 {
	return Hash(key)
}

func (h hasher) Equal(a, b interface{}) bool {
	return Equals(a, b)
}

// Equals compares values. Integers in different notations are not equal.
func Equals(this Value, that Value) bool {
	switch cast := this.(type) {
	case HasSimpleValueEquality:
		return cast.ValueEquals(that)
	default:
		return false
	}
}

// Distinct drops repeated values, keeping the first of each
func Distinct(values ...Value) []Value {
	seen := immutable.NewMap(hasher{})
	var result []Value
	for _, value := range values {
		if _, found := seen.Get(value); found {
			continue
		}
		seen = seen.Set(value, struct{}{})
		result = append(result, value)
	}
	return result
}

// Undefined errors
type Undefined struct {
	Name string
}

func (err Undefined) Error() string {
	return fmt.Sprintf("'%v' not found", err.Name)
}
