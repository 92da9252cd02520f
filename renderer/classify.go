package renderer

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/routelens/routelens/common"
)

// Kind is the classification tag a value is dispatched on. Classification
// happens exactly once per value; display routines trust the tag and never
// re-sniff the shape.
type Kind int

const (
	KindOpaque Kind = iota
	KindNull
	KindFullBalance
	KindBigAmount
	KindAddress
	KindAddressPath
	KindFeeTierPath
	KindHopPath
	KindNamedFieldList
	KindSwapDescriptor
	KindScalar
	KindOpaqueList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindFullBalance:
		return "full-balance"
	case KindBigAmount:
		return "big-amount"
	case KindAddress:
		return "address"
	case KindAddressPath:
		return "address-path"
	case KindFeeTierPath:
		return "fee-tier-path"
	case KindHopPath:
		return "hop-path"
	case KindNamedFieldList:
		return "named-field-list"
	case KindSwapDescriptor:
		return "swap-descriptor"
	case KindScalar:
		return "scalar"
	case KindOpaqueList:
		return "opaque-list"
	default:
		return "opaque"
	}
}

// swapFields are the keys that mark a map as a swap descriptor. A map
// carrying any one of them is dispatched to the swap rendering.
var swapFields = []string{
	"currencyIn",
	"currencyOut",
	"amountIn",
	"amountOut",
	"amountOutMinimum",
	"amountInMaximum",
	"path",
}

// Classify maps an arbitrary decoded value onto its display Kind.
//
// Precedence follows the value union: null, then the full-balance sentinel
// in any of its encodings, then numeric amounts, then addresses, then the
// structural sequence sniff, then swap descriptors, and finally plain
// scalars. Anything else is opaque.
func Classify(value any) Kind {
	switch v := value.(type) {
	case nil:
		return KindNull
	case *big.Int:
		if v == nil {
			return KindNull
		}
		return classifyInteger(v)
	case bool:
		return KindScalar
	case int:
		return KindBigAmount
	case int8, int16, int32, int64:
		return KindBigAmount
	case uint, uint8, uint16, uint32, uint64:
		return KindBigAmount
	case float32, float64:
		return KindScalar
	case json.Number:
		if n, ok := new(big.Int).SetString(string(v), 10); ok {
			return classifyInteger(n)
		}
		return KindScalar
	case string:
		if common.IsAddress(v) {
			return KindAddress
		}
		if strings.EqualFold(v, common.FullBalanceHex) {
			return KindFullBalance
		}
		if n, ok := parseDecimalString(v); ok {
			return classifyInteger(n)
		}
		return KindScalar
	case map[string]any:
		if hex, found := hexRecordString(v); found {
			if n, err := common.HexToBig(hex); err == nil {
				return classifyInteger(n)
			}
			return KindBigAmount
		}
		for _, key := range swapFields {
			if _, found := v[key]; found {
				return KindSwapDescriptor
			}
		}
		return KindOpaque
	case []any:
		return classifySequence(v)
	default:
		return KindOpaque
	}
}

func classifyInteger(v *big.Int) Kind {
	if v.Cmp(common.FullBalanceAmount) == 0 {
		return KindFullBalance
	}
	return KindBigAmount
}

// classifySequence sub-classifies a list by the shape of its elements. All
// elements must agree on one shape; mixed lists are opaque. An empty list is
// opaque as well, rendered as a zero-item sequence.
func classifySequence(seq []any) Kind {
	if len(seq) == 0 {
		return KindOpaqueList
	}

	allAddresses := true
	allFeeTier := true
	allHops := true
	allNamed := true
	for _, el := range seq {
		if s, ok := el.(string); !ok || !common.IsAddress(s) {
			allAddresses = false
		}
		m, isMap := el.(map[string]any)
		if !isMap {
			allFeeTier, allHops, allNamed = false, false, false
			continue
		}
		if !hasKeys(m, "tokenIn", "tokenOut", "fee") {
			allFeeTier = false
		}
		if !hasKeys(m, "intermediateCurrency") {
			allHops = false
		}
		if !hasKeys(m, "name", "value") {
			allNamed = false
		}
	}

	switch {
	case allAddresses:
		return KindAddressPath
	case allFeeTier:
		return KindFeeTierPath
	case allHops:
		return KindHopPath
	case allNamed:
		return KindNamedFieldList
	default:
		return KindOpaqueList
	}
}

func hasKeys(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, found := m[key]; !found {
			return false
		}
	}
	return true
}

// hexRecordString extracts the hex payload of a big-number-like record, a
// map exposing the quantity under "hex" or the legacy "_hex" key.
func hexRecordString(m map[string]any) (string, bool) {
	if s, ok := m["hex"].(string); ok {
		return s, true
	}
	if s, ok := m["_hex"].(string); ok {
		return s, true
	}
	return "", false
}

// parseDecimalString parses a non-negative base-10 digit string. Anything
// else, including signs, spaces and hex, is not an amount encoding.
func parseDecimalString(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, false
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	return n, ok
}
