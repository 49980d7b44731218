package tags

import (
	"fmt"
	"strconv"
)

// FieldDisabled is the well-known payload field that marks a tag as
// non-interactive for focus navigation.
const FieldDisabled = "disabled"

// Tag is one entry in the managed collection. Value is the identity used for
// duplicate comparison and display; it should be a string or a number.
// Fields carries arbitrary host payload and is never inspected for identity.
type Tag struct {
	Value  any
	Fields map[string]any
}

// NewTag wraps a primitive candidate in a Tag with no payload fields.
func NewTag(value any) Tag {
	return Tag{Value: value}
}

// Label returns the display form of the tag's value.
func (t Tag) Label() string {
	switch v := t.Value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

// Disabled reports whether the tag opts out of focus navigation.
func (t Tag) Disabled() bool {
	v, ok := t.Fields[FieldDisabled].(bool)
	return ok && v
}

// Strings builds a collection from plain string values, preserving order.
func Strings(values ...string) []Tag {
	out := make([]Tag, len(values))
	for i, v := range values {
		out[i] = Tag{Value: v}
	}
	return out
}

// Labels returns the display form of every tag, in collection order.
func Labels(collection []Tag) []string {
	out := make([]string, len(collection))
	for i, t := range collection {
		out[i] = t.Label()
	}
	return out
}
