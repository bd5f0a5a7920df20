package poverty

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampJSON(t *testing.T) {
	ts := Timestamp(1700000000000)
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "1700000000000" {
		t.Errorf("Marshal() = %s, want a plain number", data)
	}

	var back Timestamp
	if err := json.Unmarshal([]byte("null"), &back); err != nil {
		t.Fatalf("Unmarshal(null) error = %v", err)
	}
	if !back.IsZero() {
		t.Errorf("Unmarshal(null) = %v, want zero", back)
	}
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != ts {
		t.Errorf("Unmarshal() = %v, want %v", back, ts)
	}
}

func TestTimestampTime(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	ts := TimestampOf(now)
	if !ts.Time().Equal(now) {
		t.Errorf("Time() = %v, want %v", ts.Time(), now)
	}
}
