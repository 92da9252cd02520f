package renderer

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/routelens/routelens/common"
	"github.com/routelens/routelens/ui"
)

// normalizeAmount converts any of the accepted amount encodings to a
// non-negative integer. The encodings are semantically equivalent: a decimal
// digit string, a native integer, a *big.Int, or a big-number-like record
// carrying a hex field. Negative values and anything unparsable report false.
func normalizeAmount(value any) (*big.Int, bool) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil || v.Sign() < 0 {
			return nil, false
		}
		return v, true
	case string:
		return parseDecimalString(v)
	case json.Number:
		n, ok := new(big.Int).SetString(string(v), 10)
		if !ok || n.Sign() < 0 {
			return nil, false
		}
		return n, true
	case int:
		if v < 0 {
			return nil, false
		}
		return big.NewInt(int64(v)), true
	case int8:
		if v < 0 {
			return nil, false
		}
		return big.NewInt(int64(v)), true
	case int16:
		if v < 0 {
			return nil, false
		}
		return big.NewInt(int64(v)), true
	case int32:
		if v < 0 {
			return nil, false
		}
		return big.NewInt(int64(v)), true
	case int64:
		if v < 0 {
			return nil, false
		}
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return big.NewInt(int64(v)), true
	case uint16:
		return big.NewInt(int64(v)), true
	case uint32:
		return big.NewInt(int64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	case map[string]any:
		hex, found := hexRecordString(v)
		if !found {
			return nil, false
		}
		n, err := common.HexToBig(hex)
		if err != nil {
			return nil, false
		}
		return n, true
	default:
		return nil, false
	}
}

// amountDisplay renders a numeric amount. With a contextual currency the
// integer is scaled by the resolved token's decimals and labelled with its
// symbol; an unresolvable currency falls back to 18 decimals and the generic
// "tokens" unit. Without currency context the normalized integer is shown
// as-is. Values that fail normalization pass through literally.
func (r *Renderer) amountDisplay(ctx context.Context, value any, scope Scope) (string, ui.Severity) {
	amount, ok := normalizeAmount(value)
	if !ok {
		return literalDisplay(value), ui.SeverityInfo
	}
	if scope.ContextualCurrency == "" {
		return amount.String(), ui.SeverityInfo
	}
	token, found := r.registry.Resolve(ctx, scope.ContextualCurrency, scope.NetworkID)
	if !found {
		return common.BigToAmountString(amount, fallbackDecimals) + " tokens", ui.SeverityWarn
	}
	return common.BigToAmountString(amount, token.Decimals) + " " + token.Symbol, ui.SeveritySuccess
}

// feePercentOpt renders a pool fee as a percent string when value carries a
// normalizable fee.
func feePercentOpt(value any) (string, bool) {
	fee, ok := normalizeAmount(value)
	if !ok {
		return "", false
	}
	return common.FeeToPercent(fee), true
}
