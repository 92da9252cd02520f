package decoder

import "github.com/ethereum/go-ethereum/common/hexutil"

// V3 routes pack 20-byte token addresses alternated with 3-byte big-endian
// pool fees, no padding: token(20) fee(3) token(20) [fee(3) token(20)]...
const (
	v3AddrLen = 20
	v3HopLen  = v3AddrLen + 3
)

// parseV3Path expands a packed V3 route into fee-tier hop maps. Exact-output
// routes are packed from the output token backwards, so those re-order into
// flow direction. A blob that does not land on the packing grid comes back
// as its raw hex form instead.
func parseV3Path(data []byte, exactOut bool) any {
	if len(data) < v3HopLen+v3AddrLen || (len(data)-v3AddrLen)%v3HopLen != 0 {
		return hexutil.Encode(data)
	}

	n := (len(data) - v3AddrLen) / v3HopLen
	hops := make([]any, 0, n)
	for i := 0; i < n; i++ {
		o := i * v3HopLen
		fee := int64(data[o+v3AddrLen])<<16 | int64(data[o+v3AddrLen+1])<<8 | int64(data[o+v3AddrLen+2])
		hops = append(hops, map[string]any{
			"tokenIn":  hexutil.Encode(data[o : o+v3AddrLen]),
			"tokenOut": hexutil.Encode(data[o+v3HopLen : o+v3HopLen+v3AddrLen]),
			"fee":      fee,
		})
	}

	if exactOut {
		for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
			hops[i], hops[j] = hops[j], hops[i]
		}
		for _, el := range hops {
			hop := el.(map[string]any)
			hop["tokenIn"], hop["tokenOut"] = hop["tokenOut"], hop["tokenIn"]
		}
	}
	return hops
}
