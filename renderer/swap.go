package renderer

import (
	"context"
	"strings"

	"github.com/routelens/routelens/common"
	"github.com/routelens/routelens/ui"
)

// stringField reads a string member of a descriptor. Presence and being a
// string are reported together; an empty string is a present value, it
// denotes the native asset.
func stringField(m map[string]any, key string) (string, bool) {
	v, found := m[key]
	if !found {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// currencyContext turns a descriptor currency into a Scope currency. The
// empty string means native, which the registry expects as the zero
// address; absence means no context at all.
func currencyContext(addr string, has bool) string {
	if !has {
		return ""
	}
	if addr == "" {
		return common.NativeAddress
	}
	return addr
}

// firstIntermediate finds the first defined intermediate currency of a hop
// path, used as the implicit output currency when the descriptor has none.
func firstIntermediate(path []any) (string, bool) {
	for _, el := range path {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		if cur, ok := m["intermediateCurrency"].(string); ok && cur != "" {
			return cur, true
		}
	}
	return "", false
}

// swapDisplay composes the fixed-order swap lines, including only the lines
// whose source field is present:
//
//	From: WETH
//	To: USDC
//	Amount In: 1.5 WETH
//	Amount Out: 2769.96 USDC
//	Min Out: 2741.5 USDC
//	Path: DAI →(0.05%) USDC
//
// Output-denominated amounts scale by the explicit output currency; when
// that is absent the path's first intermediate currency fills in. The
// maximum-input bound is deliberately not displayed, the raw serialization
// keeps it. A descriptor with no displayable field gets a placeholder.
func (r *Renderer) swapDisplay(ctx context.Context, m map[string]any, scope Scope) (string, ui.Severity) {
	currencyIn, hasIn := stringField(m, "currencyIn")
	currencyOut, hasOut := stringField(m, "currencyOut")
	path, hasPath := m["path"].([]any)

	inputContext := currencyContext(currencyIn, hasIn)
	outputContext := currencyContext(currencyOut, hasOut)
	if outputContext == "" && hasPath {
		if cur, found := firstIntermediate(path); found {
			outputContext = cur
		}
	}

	lines := []string{}
	if hasIn {
		sym, _ := r.symbolOr(ctx, currencyIn, scope)
		lines = append(lines, "From: "+sym)
	}
	if hasOut {
		sym, _ := r.symbolOr(ctx, currencyOut, scope)
		lines = append(lines, "To: "+sym)
	}
	// Amounts go through the full dispatch, not straight to numeric
	// scaling, so a full-balance sentinel in an amount field still renders
	// as the marker.
	if v, found := m["amountIn"]; found {
		display, _ := r.display(ctx, v, Scope{NetworkID: scope.NetworkID, ContextualCurrency: inputContext})
		lines = append(lines, "Amount In: "+display)
	}
	if v, found := m["amountOut"]; found {
		display, _ := r.display(ctx, v, Scope{NetworkID: scope.NetworkID, ContextualCurrency: outputContext})
		lines = append(lines, "Amount Out: "+display)
	}
	if v, found := m["amountOutMinimum"]; found {
		display, _ := r.display(ctx, v, Scope{NetworkID: scope.NetworkID, ContextualCurrency: outputContext})
		lines = append(lines, "Min Out: "+display)
	}
	if hasPath {
		display, _ := r.display(ctx, m["path"], scope)
		lines = append(lines, "Path: "+display)
	}

	if len(lines) == 0 {
		return "(no swap details)", ui.SeverityInfo
	}
	return strings.Join(lines, "\n"), ui.SeverityCritical
}
