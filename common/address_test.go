package common

import "testing"

func TestIsAddress(t *testing.T) {
	valid := []string{
		"0x0000000000000000000000000000000000000000",
		"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
	}
	for _, s := range valid {
		if !IsAddress(s) {
			t.Errorf("IsAddress(%q) = false, want true", s)
		}
	}
	invalid := []string{
		"",
		"0x",
		"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc",
		"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2ff",
		"c02aaa39b223fe8d0a0e5c4f27ead9083c756cc2aa",
		"0xg02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
	}
	for _, s := range invalid {
		if IsAddress(s) {
			t.Errorf("IsAddress(%q) = true, want false", s)
		}
	}
}

func TestIsNativeAddress(t *testing.T) {
	if !IsNativeAddress("") {
		t.Errorf("empty address should be native")
	}
	if !IsNativeAddress(NativeAddress) {
		t.Errorf("zero address should be native")
	}
	if !IsNativeAddress("0x0000000000000000000000000000000000000000") {
		t.Errorf("zero address literal should be native")
	}
	if IsNativeAddress(MsgSenderAddress) {
		t.Errorf("0x..01 is not native")
	}
	if IsNativeAddress("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2") {
		t.Errorf("WETH is not native")
	}
}

func TestTruncateAddress(t *testing.T) {
	got := TruncateAddress("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
	if got != "0xc02a...6cc2" {
		t.Errorf("TruncateAddress = %q, want %q", got, "0xc02a...6cc2")
	}
	if got := TruncateAddress("0xabc"); got != "0xabc" {
		t.Errorf("short input should pass through, got %q", got)
	}
}

func TestFullBalanceAmount(t *testing.T) {
	parsed, err := HexToBig(FullBalanceHex)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if parsed.Cmp(FullBalanceAmount) != 0 {
		t.Errorf("FullBalanceHex parses to %s, want %s", parsed, FullBalanceAmount)
	}
}
