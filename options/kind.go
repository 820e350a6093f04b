package options

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the concrete value type held by an option. It is assigned
// once at construction and compared to detect type mismatches; it is never
// used to cast.
type Kind uint8

// The closed set of value kinds an option can hold.
const (
	KindInvalid Kind = iota
	KindUint32
	KindUint64
	KindInt32
	KindInt64
	KindFloat64
	KindBool
	KindString
	KindStringSlice
)

// String returns the Go syntax of the kind's value type.
func (k Kind) String() string {
	switch k {
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindStringSlice:
		return "[]string"
	}
	return "invalid"
}

// ValueType constrains the types an option can be instantiated with.
// The set is closed: supporting a new type means extending this constraint,
// Kind, the Visitor interface and the dispatch in Accept together, which the
// compiler enforces.
type ValueType interface {
	uint32 | uint64 | int32 | int64 | float64 | bool | string | []string
}

// kindOf maps an instantiated type parameter to its Kind.
func kindOf[T ValueType]() Kind {
	var zero T
	switch any(zero).(type) {
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float64:
		return KindFloat64
	case bool:
		return KindBool
	case string:
		return KindString
	case []string:
		return KindStringSlice
	}
	return KindInvalid
}

// valueEqual compares two option values, treating string slices element-wise.
func valueEqual[T ValueType](a, b T) bool {
	if as, ok := any(a).([]string); ok {
		bs, _ := any(b).([]string)
		return slices.Equal(as, bs)
	}
	return any(a) == any(b)
}

// containsValue reports whether v is a member of set.
func containsValue[T ValueType](set []T, v T) bool {
	for _, member := range set {
		if valueEqual(member, v) {
			return true
		}
	}
	return false
}

// formatValue renders an option value for diagnostics. String slices are
// comma-joined, matching how they are written on a command line.
func formatValue[T ValueType](v T) string {
	switch val := any(v).(type) {
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case []string:
		return strings.Join(val, ",")
	}
	return ""
}

// invalidChoiceError builds the advisory message recorded when an assigned
// value falls outside the allowed-choice set.
func invalidChoiceError[T ValueType](name string, v T, choices []T) string {
	formatted := make([]string, 0, len(choices))
	for _, choice := range choices {
		formatted = append(formatted, formatValue(choice))
	}

	return fmt.Sprintf("Error: '%s' is not a valid choice for option --%s. Please select from {%s}",
		formatValue(v), name, strings.Join(formatted, ", "))
}
