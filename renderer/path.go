package renderer

import (
	"context"
	"fmt"
	"strings"

	"github.com/routelens/routelens/common"
	"github.com/routelens/routelens/ui"
)

func worst(a, b ui.Severity) ui.Severity {
	if b > a {
		return b
	}
	return a
}

// addressDisplay renders an address leaf. The router's recipient
// placeholders get fixed labels; everything else resolves to
// "SYMBOL (0xaaaa...bbbb)" or, unresolved, to the truncated address alone.
func (r *Renderer) addressDisplay(ctx context.Context, addr string, scope Scope) (string, ui.Severity) {
	switch {
	case strings.EqualFold(addr, common.MsgSenderAddress):
		return fmt.Sprintf("MSG_SENDER (%s)", common.TruncateAddress(addr)), ui.SeveritySuccess
	case strings.EqualFold(addr, common.AddressThisAddress):
		return fmt.Sprintf("ADDRESS_THIS (%s)", common.TruncateAddress(addr)), ui.SeveritySuccess
	}
	token, found := r.registry.Resolve(ctx, addr, scope.NetworkID)
	if !found {
		return common.TruncateAddress(addr), ui.SeverityWarn
	}
	return fmt.Sprintf("%s (%s)", token.Symbol, common.TruncateAddress(addr)), ui.SeveritySuccess
}

// symbolOr resolves addr to its bare symbol for use inside path chains and
// swap lines. Unresolved addresses fall back to their truncated form.
func (r *Renderer) symbolOr(ctx context.Context, addr string, scope Scope) (string, bool) {
	switch {
	case strings.EqualFold(addr, common.MsgSenderAddress):
		return "MSG_SENDER", true
	case strings.EqualFold(addr, common.AddressThisAddress):
		return "ADDRESS_THIS", true
	}
	token, found := r.registry.Resolve(ctx, addr, scope.NetworkID)
	if !found {
		return common.TruncateAddress(addr), false
	}
	return token.Symbol, true
}

// hopSymbol is symbolOr for a value pulled out of a hop map, which the
// structural sniff only guarantees to exist, not to be a string.
func (r *Renderer) hopSymbol(ctx context.Context, value any, scope Scope) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return literalDisplay(value), false
	}
	return r.symbolOr(ctx, s, scope)
}

// addressPathDisplay joins the symbols of a plain address chain with
// directional arrows: "WETH → USDC → DAI".
func (r *Renderer) addressPathDisplay(ctx context.Context, seq []any, scope Scope) (string, ui.Severity) {
	severity := ui.SeveritySuccess
	parts := make([]string, 0, len(seq))
	for _, el := range seq {
		sym, resolved := r.symbolOr(ctx, el.(string), scope)
		if !resolved {
			severity = ui.SeverityWarn
		}
		parts = append(parts, sym)
	}
	return strings.Join(parts, " → "), severity
}

// feeTierPathDisplay renders a re-pricing hop chain: the first hop's input
// token, then one fee-annotated arrow per hop:
// "WETH →(0.3%) USDC →(0.05%) DAI".
func (r *Renderer) feeTierPathDisplay(ctx context.Context, seq []any, scope Scope) (string, ui.Severity) {
	severity := ui.SeveritySuccess
	b := strings.Builder{}
	for i, el := range seq {
		hop := el.(map[string]any)
		if i == 0 {
			sym, resolved := r.hopSymbol(ctx, hop["tokenIn"], scope)
			if !resolved {
				severity = ui.SeverityWarn
			}
			b.WriteString(sym)
		}
		sym, resolved := r.hopSymbol(ctx, hop["tokenOut"], scope)
		if !resolved {
			severity = ui.SeverityWarn
		}
		if percent, found := feePercentOpt(hop["fee"]); found {
			b.WriteString(fmt.Sprintf(" →(%s%%) %s", percent, sym))
		} else {
			b.WriteString(" → " + sym)
		}
	}
	return b.String(), severity
}

// hopPathDisplay renders an intermediate-currency chain. The first kept hop
// shows its bare symbol; every following hop appends an arrow, annotated
// with the hop's fee percentage when one is present. Hops without an
// intermediate currency are skipped.
func (r *Renderer) hopPathDisplay(ctx context.Context, seq []any, scope Scope) (string, ui.Severity) {
	severity := ui.SeveritySuccess
	b := strings.Builder{}
	kept := 0
	for _, el := range seq {
		hop := el.(map[string]any)
		cur, ok := hop["intermediateCurrency"].(string)
		if !ok || cur == "" {
			continue
		}
		sym, resolved := r.symbolOr(ctx, cur, scope)
		if !resolved {
			severity = ui.SeverityWarn
		}
		if kept == 0 {
			b.WriteString(sym)
		} else if percent, found := feePercentOpt(hop["fee"]); found {
			b.WriteString(fmt.Sprintf(" →(%s%%) %s", percent, sym))
		} else {
			b.WriteString(" → " + sym)
		}
		kept++
	}
	return b.String(), severity
}

// namedFieldDisplay renders a flattened parameter bundle as one
// "name: value" line per element, recursing into each value with the scope
// unchanged.
func (r *Renderer) namedFieldDisplay(ctx context.Context, seq []any, scope Scope) (string, ui.Severity) {
	severity := ui.SeverityInfo
	lines := make([]string, 0, len(seq))
	for _, el := range seq {
		field := el.(map[string]any)
		name, _ := field["name"].(string)
		sub, sev := r.display(ctx, field["value"], scope)
		severity = worst(severity, sev)
		lines = append(lines, fmt.Sprintf("%s: %s", name, sub))
	}
	return strings.Join(lines, "\n"), severity
}
