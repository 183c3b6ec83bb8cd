package messages

import (
	"strconv"
	"strings"
)

// Key names a catalog entry. The spelling matches the identifiers schema
// authors use when overriding messages.
type Key string

const (
	KeyRequired     Key = "REQUIRED"
	KeySpaceStart   Key = "SPACE_START"
	KeySpaceEnd     Key = "SPACE_END"
	KeyDotEnd       Key = "DOT_END"
	KeyNumber       Key = "NUMBER"
	KeyZeroStart    Key = "ZERO_START"
	KeyInt          Key = "INT"
	KeyInvalid      Key = "INVALID"
	KeyMaxLengthArr Key = "maxLengthArr"
	KeyMinLengthArr Key = "minLengthArr"
	KeyMaxLength    Key = "maxLength"
	KeyMinLength    Key = "minLength"
	KeyMaxNumber    Key = "maxNumber"
	KeyMinNumber    Key = "minNumber"
)

// BoundPlaceholder is replaced with the violated bound by Bounded messages.
const BoundPlaceholder = "{bound}"

var allKeys = []Key{
	KeyRequired,
	KeySpaceStart,
	KeySpaceEnd,
	KeyDotEnd,
	KeyNumber,
	KeyZeroStart,
	KeyInt,
	KeyInvalid,
	KeyMaxLengthArr,
	KeyMinLengthArr,
	KeyMaxLength,
	KeyMinLength,
	KeyMaxNumber,
	KeyMinNumber,
}

// Keys returns every catalog key in declaration order.
func Keys() []Key {
	return append([]Key(nil), allKeys...)
}

// ParseKey resolves a raw identifier into a Key.
func ParseKey(raw string) (Key, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, key := range allKeys {
		if string(key) == trimmed {
			return key, true
		}
	}
	return "", false
}

// IsBounded reports whether the entry for key receives a numeric bound.
func IsBounded(key Key) bool {
	switch key {
	case KeyMaxLengthArr, KeyMinLengthArr, KeyMaxLength, KeyMinLength, KeyMaxNumber, KeyMinNumber:
		return true
	default:
		return false
	}
}

// Message produces the user-facing text for a violation. Literal entries
// ignore the bound; bound-aware entries embed it.
type Message func(bound float64) string

// Text returns a Message that always yields s.
func Text(s string) Message {
	return func(float64) string {
		return s
	}
}

// Bounded returns a Message that substitutes BoundPlaceholder in template
// with the bound formatted by FormatBound.
func Bounded(template string) Message {
	return func(bound float64) string {
		return strings.ReplaceAll(template, BoundPlaceholder, FormatBound(bound))
	}
}

// FormatBound renders a bound with the fewest digits that round-trip, so
// integral bounds print without a fractional part.
func FormatBound(bound float64) string {
	return strconv.FormatFloat(bound, 'f', -1, 64)
}

// Catalog maps every Key to a Message. A nil entry is unset: Lookup falls
// back to Defaults and Merge leaves the receiver's entry in place.
type Catalog struct {
	Required     Message
	SpaceStart   Message
	SpaceEnd     Message
	DotEnd       Message
	Number       Message
	ZeroStart    Message
	Int          Message
	Invalid      Message
	MaxLengthArr Message
	MinLengthArr Message
	MaxLength    Message
	MinLength    Message
	MaxNumber    Message
	MinNumber    Message
}

// Defaults returns the built-in catalog.
func Defaults() Catalog {
	return Catalog{
		Required:     Text("This field is required"),
		SpaceStart:   Text("The value must not start with a space"),
		SpaceEnd:     Text("The value must not end with a space"),
		DotEnd:       Text("The value must not end with a dot"),
		Number:       Text("The value must be a number"),
		ZeroStart:    Text("The value must not start with a zero"),
		Int:          Text("The value must be an integer"),
		Invalid:      Text("The value is invalid"),
		MaxLengthArr: Bounded("Select at most {bound} items"),
		MinLengthArr: Bounded("Select at least {bound} items"),
		MaxLength:    Bounded("Enter at most {bound} characters"),
		MinLength:    Bounded("Enter at least {bound} characters"),
		MaxNumber:    Bounded("The value must be at most {bound}"),
		MinNumber:    Bounded("The value must be at least {bound}"),
	}
}

// Merge returns a copy of c where every non-nil entry of overrides replaces
// the corresponding entry. Nothing is merged below entry level.
func (c Catalog) Merge(overrides Catalog) Catalog {
	out := c
	for _, key := range allKeys {
		if msg := *overrides.slot(key); msg != nil {
			*out.slot(key) = msg
		}
	}
	return out
}

// With returns a copy of c with the entry for key replaced by msg.
func (c Catalog) With(key Key, msg Message) Catalog {
	out := c
	if slot := out.slot(key); slot != nil {
		*slot = msg
	}
	return out
}

// Lookup returns the entry for key, falling back to the default entry when
// c leaves it unset. Unknown keys return nil.
func (c Catalog) Lookup(key Key) Message {
	slot := c.slot(key)
	if slot == nil {
		return nil
	}
	if *slot != nil {
		return *slot
	}
	defaults := Defaults()
	return *defaults.slot(key)
}

// Format resolves key and renders it with bound. Unknown keys render as the
// key itself so a violation never carries an empty message.
func (c Catalog) Format(key Key, bound float64) string {
	msg := c.Lookup(key)
	if msg == nil {
		return string(key)
	}
	return msg(bound)
}

// Empty reports whether no entry is set.
func (c Catalog) Empty() bool {
	for _, key := range allKeys {
		if *c.slot(key) != nil {
			return false
		}
	}
	return true
}

func (c *Catalog) slot(key Key) *Message {
	switch key {
	case KeyRequired:
		return &c.Required
	case KeySpaceStart:
		return &c.SpaceStart
	case KeySpaceEnd:
		return &c.SpaceEnd
	case KeyDotEnd:
		return &c.DotEnd
	case KeyNumber:
		return &c.Number
	case KeyZeroStart:
		return &c.ZeroStart
	case KeyInt:
		return &c.Int
	case KeyInvalid:
		return &c.Invalid
	case KeyMaxLengthArr:
		return &c.MaxLengthArr
	case KeyMinLengthArr:
		return &c.MinLengthArr
	case KeyMaxLength:
		return &c.MaxLength
	case KeyMinLength:
		return &c.MinLength
	case KeyMaxNumber:
		return &c.MaxNumber
	case KeyMinNumber:
		return &c.MinNumber
	default:
		return nil
	}
}
