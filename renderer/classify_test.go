package renderer

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/routelens/routelens/common"
)

func TestClassify(t *testing.T) {
	sentinel := new(big.Int).Lsh(big.NewInt(1), 255)

	tests := []struct {
		name  string
		value any
		want  Kind
	}{
		{name: "nil", value: nil, want: KindNull},
		{name: "nil big int", value: (*big.Int)(nil), want: KindNull},

		{name: "sentinel hex string", value: common.FullBalanceHex, want: KindFullBalance},
		{name: "sentinel big int", value: sentinel, want: KindFullBalance},
		{name: "sentinel decimal string", value: sentinel.String(), want: KindFullBalance},
		{name: "sentinel hex record", value: map[string]any{"hex": common.FullBalanceHex}, want: KindFullBalance},
		{name: "sentinel legacy hex record", value: map[string]any{"_hex": common.FullBalanceHex}, want: KindFullBalance},

		{name: "big int", value: big.NewInt(42), want: KindBigAmount},
		{name: "decimal string", value: "1000000000000000000", want: KindBigAmount},
		{name: "json number", value: json.Number("2500000"), want: KindBigAmount},
		{name: "int64", value: int64(3000), want: KindBigAmount},
		{name: "uint8", value: uint8(7), want: KindBigAmount},
		{name: "hex record", value: map[string]any{"hex": "0x2625a0"}, want: KindBigAmount},
		{name: "ethers record with type tag", value: map[string]any{"type": "BigNumber", "hex": "0x0de0b6b3a7640000"}, want: KindBigAmount},

		{name: "address", value: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", want: KindAddress},
		{name: "zero address", value: common.NativeAddress, want: KindAddress},

		{name: "bool", value: true, want: KindScalar},
		{name: "plain string", value: "hello", want: KindScalar},
		{name: "negative decimal string", value: "-5", want: KindScalar},
		{name: "bare hex string", value: "0x2625a0", want: KindScalar},
		{name: "fractional json number", value: json.Number("1.5"), want: KindScalar},

		{
			name:  "address path",
			value: []any{"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"},
			want:  KindAddressPath,
		},
		{
			name: "fee tier path",
			value: []any{
				map[string]any{"tokenIn": "0xaa", "tokenOut": "0xbb", "fee": int64(3000)},
			},
			want: KindFeeTierPath,
		},
		{
			name: "hop path",
			value: []any{
				map[string]any{"intermediateCurrency": "0xbb", "fee": int64(500)},
			},
			want: KindHopPath,
		},
		{
			name: "named field list",
			value: []any{
				map[string]any{"name": "currency0", "value": "0xaa"},
				map[string]any{"name": "fee", "value": int64(3000)},
			},
			want: KindNamedFieldList,
		},
		{name: "empty sequence", value: []any{}, want: KindOpaqueList},
		{name: "mixed sequence", value: []any{"0xaa", int64(1)}, want: KindOpaqueList},
		{name: "sequence of plain strings", value: []any{"a", "b"}, want: KindOpaqueList},

		{name: "swap descriptor by currencyIn", value: map[string]any{"currencyIn": "0xaa"}, want: KindSwapDescriptor},
		{name: "swap descriptor by amountOut", value: map[string]any{"amountOut": "1"}, want: KindSwapDescriptor},
		{name: "swap descriptor by path", value: map[string]any{"path": []any{}}, want: KindSwapDescriptor},

		{name: "float", value: 1.5, want: KindScalar},
		{name: "unknown map", value: map[string]any{"foo": 1}, want: KindOpaque},
		{name: "struct", value: struct{}{}, want: KindOpaque},
	}

	for _, tc := range tests {
		if got := Classify(tc.value); got != tc.want {
			t.Errorf("%s: Classify = %s, want %s", tc.name, got, tc.want)
		}
	}
}
