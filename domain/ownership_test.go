package domain

import (
	"encoding/json"
	"testing"
)

func TestAmount_UnmarshalJSON(t *testing.T) {

	cases := []struct {
		in        string
		wantValue float64
		wantValid bool
	}{
		{`1234.56`, 1234.56, true},
		{`"1234.56"`, 1234.56, true},
		{`"1,234.56"`, 1234.56, true},
		{`" 99 "`, 99, true},
		{`"n/a"`, 0, false},
		{`null`, 0, false},
		{`true`, 0, false},
	}

	for _, c := range cases {
		var a Amount
		if err := json.Unmarshal([]byte(c.in), &a); err != nil {
			t.Errorf("Unmarshal(%s) returned error: %v", c.in, err)
			continue
		}
		if a.Value != c.wantValue || a.Valid != c.wantValid {
			t.Errorf("Unmarshal(%s) = {%.2f %v}, want {%.2f %v}",
				c.in, a.Value, a.Valid, c.wantValue, c.wantValid)
		}
	}
}

func TestAmount_MarshalJSON(t *testing.T) {

	blob, err := json.Marshal(Amount{Value: 42.5, Valid: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(blob) != "42.5" {
		t.Errorf("expected 42.5, got %s", blob)
	}
}

func TestRawYearlyEntry_DecodesLooseSeries(t *testing.T) {

	blob := `[
		{"year": 1, "principalPaid": 1000, "interestPaid": 500, "remainingBalance": 9000},
		{"year": "2", "principalPaid": "1,100", "interestPaid": null, "remainingBalance": "7900"}
	]`

	var entries []RawYearlyEntry
	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !entries[1].Year.Valid || entries[1].Year.Value != 2 {
		t.Errorf("string year not coerced: %+v", entries[1].Year)
	}
	if entries[1].PrincipalPaid.Value != 1100 {
		t.Errorf("formatted principal not coerced: %+v", entries[1].PrincipalPaid)
	}
	if entries[1].InterestPaid.Valid {
		t.Errorf("null interest should be invalid")
	}
}
