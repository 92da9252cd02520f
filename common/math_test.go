package common

import (
	"math/big"
	"testing"
)

func TestHexToBig(t *testing.T) {
	tests := []struct {
		hex  string
		want string
		err  bool
	}{
		{hex: "0x22b1c8c1227a0000", want: "2500000000000000000"},
		{hex: "0x0de0b6b3a7640000", want: "1000000000000000000"},
		{hex: "de0b6b3a7640000", want: "1000000000000000000"},
		{hex: "0x0", want: "0"},
		{hex: "0x8000000000000000000000000000000000000000000000000000000000000000", want: new(big.Int).Lsh(big.NewInt(1), 255).String()},
		{hex: "0x", err: true},
		{hex: "0xnothex", err: true},
	}
	for _, tc := range tests {
		got, err := HexToBig(tc.hex)
		if tc.err {
			if err == nil {
				t.Errorf("HexToBig(%q) expected error, got %s", tc.hex, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("HexToBig(%q) unexpected error: %s", tc.hex, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("HexToBig(%q) = %s, want %s", tc.hex, got, tc.want)
		}
	}
}

func TestStringToBig(t *testing.T) {
	got, err := StringToBig("1234567890123456789")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.String() != "1234567890123456789" {
		t.Errorf("StringToBig = %s, want 1234567890123456789", got)
	}
	if _, err = StringToBig("12.5"); err == nil {
		t.Errorf("StringToBig(\"12.5\") expected error")
	}
	if _, err = StringToBig(""); err == nil {
		t.Errorf("StringToBig(\"\") expected error")
	}
}

func TestBigToAmountString(t *testing.T) {
	tests := []struct {
		value    string
		decimals int32
		want     string
	}{
		{value: "1000000000000000000", decimals: 18, want: "1"},
		{value: "2500000000000000000", decimals: 18, want: "2.5"},
		{value: "1234567890123456789", decimals: 18, want: "1.234567"},
		{value: "2500000", decimals: 6, want: "2.5"},
		{value: "1", decimals: 18, want: "0"},
		{value: "0", decimals: 18, want: "0"},
		{value: "-1500000000000000000", decimals: 18, want: "-1.5"},
		{value: "42", decimals: 0, want: "42"},
	}
	for _, tc := range tests {
		v, ok := new(big.Int).SetString(tc.value, 10)
		if !ok {
			t.Fatalf("bad test value %q", tc.value)
		}
		if got := BigToAmountString(v, tc.decimals); got != tc.want {
			t.Errorf("BigToAmountString(%s, %d) = %q, want %q", tc.value, tc.decimals, got, tc.want)
		}
	}
}

func TestFeeToPercent(t *testing.T) {
	tests := []struct {
		fee  int64
		want string
	}{
		{fee: 3000, want: "0.3"},
		{fee: 500, want: "0.05"},
		{fee: 100, want: "0.01"},
		{fee: 10000, want: "1"},
		{fee: 0, want: "0"},
	}
	for _, tc := range tests {
		if got := FeeToPercent(big.NewInt(tc.fee)); got != tc.want {
			t.Errorf("FeeToPercent(%d) = %q, want %q", tc.fee, got, tc.want)
		}
	}
}
