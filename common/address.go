package common

import (
	"math/big"
	"strings"
)

const (
	// NativeAddress is the zero address, used on-chain to stand for the
	// chain's native token instead of an ERC20 contract.
	NativeAddress = "0x0000000000000000000000000000000000000000"

	// MsgSenderAddress and AddressThisAddress are router recipient
	// placeholders. The router substitutes the caller, respectively its own
	// address, when it encounters them.
	MsgSenderAddress   = "0x0000000000000000000000000000000000000001"
	AddressThisAddress = "0x0000000000000000000000000000000000000002"

	// FullBalanceHex is 2^255, the router's contract-balance marker. An
	// amount equal to it means "use everything this contract holds" rather
	// than a literal quantity.
	FullBalanceHex = "0x8000000000000000000000000000000000000000000000000000000000000000"
)

// FullBalanceAmount is FullBalanceHex as an integer.
var FullBalanceAmount = new(big.Int).Lsh(big.NewInt(1), 255)

// IsAddress reports whether s looks like a 20-byte hex address.
func IsAddress(s string) bool {
	if len(s) != 42 || !strings.HasPrefix(s, "0x") {
		return false
	}
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsNativeAddress reports whether addr denotes the native token. Both the
// empty string and the zero address qualify.
func IsNativeAddress(addr string) bool {
	return addr == "" || strings.EqualFold(addr, NativeAddress)
}

// TruncateAddress shortens an address for display, keeping the 0x prefix
// plus the first four and last four digits: 0xaaaa...bbbb.
func TruncateAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
