package decoder

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// mustType builds a static ABI type. The type strings below are fixed at
// compile time, so a failure here is a programming error, not input
// dependent.
func mustType(t string, components []abi.ArgumentMarshaling) abi.Type {
	typ, err := abi.NewType(t, "", components)
	if err != nil {
		panic(fmt.Sprintf("abi type %q: %s", t, err))
	}
	return typ
}

var (
	typeAddress    = mustType("address", nil)
	typeAddressArr = mustType("address[]", nil)
	typeBool       = mustType("bool", nil)
	typeBytes      = mustType("bytes", nil)
	typeBytesArr   = mustType("bytes[]", nil)
	typeUint160    = mustType("uint160", nil)
	typeUint256    = mustType("uint256", nil)
)

// permitDetailsComponents mirrors permit2's allowance tuple.
var permitDetailsComponents = []abi.ArgumentMarshaling{
	{Name: "token", Type: "address"},
	{Name: "amount", Type: "uint160"},
	{Name: "expiration", Type: "uint48"},
	{Name: "nonce", Type: "uint48"},
}

var (
	typePermitSingle = mustType("tuple", []abi.ArgumentMarshaling{
		{Name: "details", Type: "tuple", Components: permitDetailsComponents},
		{Name: "spender", Type: "address"},
		{Name: "sigDeadline", Type: "uint256"},
	})
	typePermitBatch = mustType("tuple", []abi.ArgumentMarshaling{
		{Name: "details", Type: "tuple[]", Components: permitDetailsComponents},
		{Name: "spender", Type: "address"},
		{Name: "sigDeadline", Type: "uint256"},
	})
	typeAllowanceTransfers = mustType("tuple[]", []abi.ArgumentMarshaling{
		{Name: "from", Type: "address"},
		{Name: "to", Type: "address"},
		{Name: "amount", Type: "uint160"},
		{Name: "token", Type: "address"},
	})
)

var poolKeyComponents = []abi.ArgumentMarshaling{
	{Name: "currency0", Type: "address"},
	{Name: "currency1", Type: "address"},
	{Name: "fee", Type: "uint24"},
	{Name: "tickSpacing", Type: "int24"},
	{Name: "hooks", Type: "address"},
}

var pathKeyComponents = []abi.ArgumentMarshaling{
	{Name: "intermediateCurrency", Type: "address"},
	{Name: "fee", Type: "uint24"},
	{Name: "tickSpacing", Type: "int24"},
	{Name: "hooks", Type: "address"},
	{Name: "hookData", Type: "bytes"},
}

var (
	typePoolKey = mustType("tuple", poolKeyComponents)

	typeSwapExactInSingle = mustType("tuple", []abi.ArgumentMarshaling{
		{Name: "poolKey", Type: "tuple", Components: poolKeyComponents},
		{Name: "zeroForOne", Type: "bool"},
		{Name: "amountIn", Type: "uint128"},
		{Name: "amountOutMinimum", Type: "uint128"},
		{Name: "hookData", Type: "bytes"},
	})
	typeSwapExactIn = mustType("tuple", []abi.ArgumentMarshaling{
		{Name: "currencyIn", Type: "address"},
		{Name: "path", Type: "tuple[]", Components: pathKeyComponents},
		{Name: "amountIn", Type: "uint128"},
		{Name: "amountOutMinimum", Type: "uint128"},
	})
	typeSwapExactOutSingle = mustType("tuple", []abi.ArgumentMarshaling{
		{Name: "poolKey", Type: "tuple", Components: poolKeyComponents},
		{Name: "zeroForOne", Type: "bool"},
		{Name: "amountOut", Type: "uint128"},
		{Name: "amountInMaximum", Type: "uint128"},
		{Name: "hookData", Type: "bytes"},
	})
	typeSwapExactOut = mustType("tuple", []abi.ArgumentMarshaling{
		{Name: "currencyOut", Type: "address"},
		{Name: "path", Type: "tuple[]", Components: pathKeyComponents},
		{Name: "amountOut", Type: "uint128"},
		{Name: "amountInMaximum", Type: "uint128"},
	})
)
