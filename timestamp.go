package poverty

import (
	"strconv"
	"time"
)

// Timestamp is a point in time stored as milliseconds since the Unix epoch,
// the way Poverty JSON documents persist times. The zero value means unset.
type Timestamp int64

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return Timestamp(time.Now().UnixMilli())
}

// TimestampOf converts a time.Time to a Timestamp.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Time converts the Timestamp back to a time.Time in the local zone.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t))
}

// IsZero reports whether the Timestamp is unset.
func (t Timestamp) IsZero() bool { return t == 0 }

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Time().Format(time.RFC3339)
}

// MarshalJSON encodes the Timestamp as a plain JSON number.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(t), 10), nil
}

// UnmarshalJSON accepts a JSON number or null (null decodes to the zero
// Timestamp).
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*t = Timestamp(v)
	return nil
}
