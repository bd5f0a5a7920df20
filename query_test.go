package poverty

import (
	"reflect"
	"testing"
)

func TestQuery(t *testing.T) {
	p := newTestEngine(t)

	testCases := []struct {
		name string
		path string
		want any
	}{
		{name: "single value unwrapped", path: "$.pools[*].name", want: "Cash"},
		{name: "scalar lookup", path: "$.meta.version", want: "0.0.1"},
		{name: "nested accounts", path: "$.budgets[0].accounts[0].id", want: "groceries"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Query(p.Document(), tc.path)
			if err != nil {
				t.Fatalf("Query(%q) error = %v", tc.path, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Query(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestQueryBadPath(t *testing.T) {
	p := newTestEngine(t)
	if _, err := Query(p.Document(), "$[["); err == nil {
		t.Error("Query() accepted a malformed path")
	}
}
