package decoder

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// domainFields are the tuple member names that carry swap semantics. A tuple
// naming any of them lowers to a plain key-value map so the formatter's
// structural sniffing can pick it up; every other tuple lowers to a generic
// named-field list.
var domainFields = map[string]bool{
	"currencyIn":           true,
	"currencyOut":          true,
	"amountIn":             true,
	"amountOut":            true,
	"amountOutMinimum":     true,
	"amountInMaximum":      true,
	"intermediateCurrency": true,
}

func isDomainTuple(t abi.Type) bool {
	for _, name := range t.TupleRawNames {
		if domainFields[name] {
			return true
		}
	}
	return false
}

// valueTree lowers one unpacked ABI value into the plain value tree the
// formatter consumes: addresses become lowercased hex strings, byte blobs
// hex strings, native-width integers stay as they are and wider ones stay
// *big.Int.
func valueTree(t abi.Type, value any) any {
	switch t.T {
	case abi.TupleTy:
		return tupleTree(t, value)
	case abi.SliceTy, abi.ArrayTy:
		realVal := reflect.ValueOf(value)
		items := make([]any, 0, realVal.Len())
		for i := 0; i < realVal.Len(); i++ {
			items = append(items, valueTree(*t.Elem, realVal.Index(i).Interface()))
		}
		return items
	case abi.AddressTy:
		return strings.ToLower(value.(gethcommon.Address).Hex())
	case abi.HashTy:
		return strings.ToLower(value.(gethcommon.Hash).Hex())
	case abi.BytesTy:
		return hexutil.Encode(value.([]byte))
	case abi.FixedBytesTy, abi.FunctionTy:
		word := make([]byte, reflect.TypeOf(value).Len())
		reflect.Copy(reflect.ValueOf(word), reflect.ValueOf(value))
		return hexutil.Encode(word)
	case abi.IntTy, abi.UintTy, abi.BoolTy, abi.StringTy:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}

func tupleTree(t abi.Type, value any) any {
	realVal := reflect.Indirect(reflect.ValueOf(value))
	if isDomainTuple(t) {
		m := make(map[string]any, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			m[t.TupleRawNames[i]] = valueTree(*elem, realVal.Field(i).Interface())
		}
		return m
	}
	fields := make([]any, 0, len(t.TupleElems))
	for i, elem := range t.TupleElems {
		fields = append(fields, map[string]any{
			"name":  t.TupleRawNames[i],
			"value": valueTree(*elem, realVal.Field(i).Interface()),
		})
	}
	return fields
}

// namedFieldValue reads one field out of a lowered named-field list.
func namedFieldValue(fields []any, name string) any {
	for _, el := range fields {
		field, ok := el.(map[string]any)
		if !ok {
			continue
		}
		if field["name"] == name {
			return field["value"]
		}
	}
	return nil
}
