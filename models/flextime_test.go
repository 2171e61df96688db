package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type flexDoc struct {
	At FlexTime `bson:"at"`
}

func TestFlexTimeBSONRoundTrip(t *testing.T) {
	instant := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	raw, err := bson.Marshal(flexDoc{At: NewFlexTime(instant)})
	require.NoError(t, err)

	// Stored form must be text, not a native datetime.
	var stored bson.M
	require.NoError(t, bson.Unmarshal(raw, &stored))
	s, ok := stored["at"].(string)
	require.True(t, ok, "timestamp should be stored as a string")
	assert.Equal(t, "2024-01-15T10:30:00Z", s)

	var out flexDoc
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.True(t, out.At.Parsed())
	assert.True(t, out.At.Time.Equal(instant))
}

func TestFlexTimeBSONRoundTripNonUTC(t *testing.T) {
	loc := time.FixedZone("EAT", 3*60*60)
	instant := time.Date(2024, 6, 1, 9, 0, 0, 500, loc)

	raw, err := bson.Marshal(flexDoc{At: NewFlexTime(instant)})
	require.NoError(t, err)

	var out flexDoc
	require.NoError(t, bson.Unmarshal(raw, &out))
	require.True(t, out.At.Parsed())
	assert.True(t, out.At.Time.Equal(instant), "round trip must preserve the instant")
}

func TestFlexTimeMalformedPassthrough(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"at": "not-a-timestamp"})
	require.NoError(t, err)

	var out flexDoc
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.False(t, out.At.Parsed())
	assert.Equal(t, "not-a-timestamp", out.At.Raw)
	assert.Equal(t, "not-a-timestamp", out.At.String())

	// The raw string survives re-serialization unchanged.
	reraw, err := bson.Marshal(out)
	require.NoError(t, err)
	var stored bson.M
	require.NoError(t, bson.Unmarshal(reraw, &stored))
	assert.Equal(t, "not-a-timestamp", stored["at"])

	js, err := json.Marshal(out.At)
	require.NoError(t, err)
	assert.Equal(t, `"not-a-timestamp"`, string(js))
}

func TestFlexTimeAcceptsNativeDatetime(t *testing.T) {
	instant := time.Date(2023, 11, 2, 15, 4, 5, 0, time.UTC)
	raw, err := bson.Marshal(bson.M{"at": instant})
	require.NoError(t, err)

	var out flexDoc
	require.NoError(t, bson.Unmarshal(raw, &out))
	require.True(t, out.At.Parsed())
	assert.True(t, out.At.Time.Equal(instant))
}

func TestFlexTimeJSON(t *testing.T) {
	instant := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	js, err := json.Marshal(NewFlexTime(instant))
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15T10:30:00Z"`, string(js))

	var ft FlexTime
	require.NoError(t, json.Unmarshal(js, &ft))
	assert.True(t, ft.Parsed())
	assert.True(t, ft.Time.Equal(instant))

	// Offset form (as written by other tooling) parses to the same instant.
	var offset FlexTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15T10:30:00+00:00"`), &offset))
	require.True(t, offset.Parsed())
	assert.True(t, offset.Time.Equal(instant))
}
