package common

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// amountFracDigits caps the fractional digits shown for scaled token amounts.
// Anything beyond is truncated, never rounded, so a displayed amount is never
// larger than the on-chain value.
const amountFracDigits = 6

// HexToBig parses a hex quantity into a big integer. The 0x prefix is
// optional and leading zero digits are accepted, which covers both canonical
// quantities and the zero-padded form some JSON encoders emit.
func HexToBig(hex string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	if digits == "" {
		return nil, fmt.Errorf("parsing hex quantity %q: no digits", hex)
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("parsing hex quantity %q failed", hex)
	}
	return v, nil
}

// StringToBig parses a base-10 digit string into a big integer.
func StringToBig(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("parsing decimal quantity %q failed", s)
	}
	return v, nil
}

// BigToAmountString scales value down by 10^decimals and renders it with at
// most amountFracDigits fractional digits, truncated. Trailing zeros are not
// shown: 10^18 wei with 18 decimals renders as "1", not "1.000000".
func BigToAmountString(value *big.Int, decimals int32) string {
	return decimal.NewFromBigInt(value, -decimals).Truncate(amountFracDigits).String()
}

// FeeToPercent converts a pool fee in hundredths of a basis point to a
// percentage string with no trailing zeros: 3000 -> "0.3", 500 -> "0.05",
// 10000 -> "1".
func FeeToPercent(fee *big.Int) string {
	return decimal.NewFromBigInt(fee, -4).String()
}
