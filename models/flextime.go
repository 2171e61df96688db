package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexTime is a timestamp that is stored in Mongo as RFC 3339 text.
// Reading back is a two-stage contract: the stored string is parsed into a
// structured instant, and if parsing fails the raw string is kept and
// re-emitted verbatim instead of failing the decode. Raw is empty whenever
// Time holds a parsed value.
type FlexTime struct {
	Time time.Time
	Raw  string
}

// NewFlexTime wraps a parsed instant.
func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{Time: t.UTC()}
}

// FlexNow returns the current UTC instant.
func FlexNow() FlexTime {
	return NewFlexTime(time.Now())
}

// Parsed reports whether the value holds a structured instant rather than a
// malformed passthrough string.
func (ft FlexTime) Parsed() bool {
	return ft.Raw == ""
}

func (ft FlexTime) String() string {
	if !ft.Parsed() {
		return ft.Raw
	}
	return ft.Time.UTC().Format(time.RFC3339Nano)
}

// MarshalBSONValue stores the timestamp as its textual form.
func (ft FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(ft.String())
}

// UnmarshalBSONValue parses the stored value, keeping the raw string when it
// does not parse. Native BSON datetimes are accepted as well so documents
// written by other tooling still load.
func (ft *FlexTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		*ft = parseFlex(rv.StringValue())
	case bsontype.DateTime:
		*ft = NewFlexTime(rv.Time())
	default:
		*ft = FlexTime{Raw: rv.String()}
	}
	return nil
}

func (ft FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(ft.String())
}

func (ft *FlexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*ft = parseFlex(s)
	return nil
}

func parseFlex(s string) FlexTime {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewFlexTime(t)
		}
	}
	return FlexTime{Raw: s}
}
