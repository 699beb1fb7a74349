package weft

import (
	"encoding/json"
	"time"

	"github.com/kittyverse/weft/errors"
)

// UnixTime is a point in time with second precision, as stored in models
// (for example the birth time of a kitty).
type UnixTime int64

// AsUnixTime converts t to its UNIX time representation.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

func (t UnixTime) IsZero() bool {
	return t == 0
}

func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "negative time")
	}
	return nil
}

func (t UnixTime) String() string {
	return t.Time().Format(time.RFC3339)
}

// UnmarshalJSON accepts both a number and an RFC3339 string, so that
// genesis files can use the readable form.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var unix int64
	if err := json.Unmarshal(raw, &unix); err == nil {
		*t = UnixTime(unix)
		return t.Validate()
	}
	var std time.Time
	if err := json.Unmarshal(raw, &std); err != nil {
		return errors.Wrap(errors.ErrInput, "invalid time format")
	}
	*t = AsUnixTime(std)
	return t.Validate()
}

// BlockUnixTime returns the block time of the context as UnixTime.
func BlockUnixTime(ctx Context) (UnixTime, error) {
	t, ok := BlockTime(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "block time not set")
	}
	return AsUnixTime(t), nil
}
