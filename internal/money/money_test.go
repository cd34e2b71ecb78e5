package money

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Cents
		wantErr bool
	}{
		{name: "plain integer", input: "10", want: 1000},
		{name: "two decimals", input: "12.34", want: 1234},
		{name: "comma separator", input: "12,34", want: 1234},
		{name: "one decimal", input: "7.5", want: 750},
		{name: "zero", input: "0", want: 0},
		{name: "zero with decimals", input: "0.00", want: 0},
		{name: "leading dot", input: ".5", want: 50},
		{name: "trailing dot", input: "5.", want: 500},
		{name: "whitespace trimmed", input: " 3.25 ", want: 325},
		{name: "third decimal rounds up", input: "0.005", want: 1},
		{name: "third decimal rounds down", input: "0.004", want: 0},
		{name: "rounding carries into cents", input: "1.999", want: 200},
		{name: "extra decimals beyond third ignored", input: "2.3449", want: 234},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "bare separator", input: ".", wantErr: true},
		{name: "negative", input: "-1.00", wantErr: true},
		{name: "explicit plus", input: "+1.00", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "trailing letters", input: "12a", wantErr: true},
		{name: "two separators", input: "1.2.3", wantErr: true},
		{name: "garbage fraction", input: "1.2x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %d cents, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCentsString(t *testing.T) {
	tests := []struct {
		cents Cents
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{50, "0.50"},
		{1234, "12.34"},
		{100000, "1000.00"},
		{-1234, "-12.34"},
	}

	for _, tt := range tests {
		if got := tt.cents.String(); got != tt.want {
			t.Errorf("Cents(%d).String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestCentsMarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Amount Cents `json:"amount"`
	}{Amount: 1234})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `{"amount":"12.34"}` {
		t.Errorf("Marshal = %s, want {\"amount\":\"12.34\"}", b)
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "0.05", "12.34", "999.99"} {
		c, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if got := c.String(); got != s {
			t.Errorf("Parse(%q).String() = %q", s, got)
		}
	}
}
