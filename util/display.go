package util

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/routelens/routelens/common"
	"github.com/routelens/routelens/networks"
	"github.com/routelens/routelens/renderer"
	"github.com/routelens/routelens/ui"
)

// maxConcurrentCommands bounds sibling command builds. Every build may
// trigger registry resolution; all of them share the one snapshot fetch.
const maxConcurrentCommands = 8

// ── Build phase (pure: no UI side-effects) ──────────────────────────────────

// BuildCallDisplay renders every parameter of every command in the plan into
// the view-model. Commands build concurrently; the slice is indexed so the
// plan order is preserved regardless of completion order.
func BuildCallDisplay(ctx context.Context, call *common.Call, r *renderer.Renderer, network networks.Network) *CallDisplay {
	d := &CallDisplay{
		Network:  network.GetName(),
		Selector: call.Selector,
		Deadline: deadlineString(call.Deadline),
		Commands: make([]CommandDisplay, len(call.Commands)),
	}
	networkID := networks.RegistryID(network)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCommands)
	for i, cmd := range call.Commands {
		i, cmd := i, cmd
		g.Go(func() error {
			d.Commands[i] = buildCommandDisplay(ctx, i, cmd, r, networkID)
			return nil
		})
	}
	// Builders never fail; the group exists for the bound and ctx plumbing.
	_ = g.Wait()
	return d
}

func buildCommandDisplay(ctx context.Context, index int, cmd common.Command, r *renderer.Renderer, networkID string) CommandDisplay {
	d := CommandDisplay{Index: index, Name: cmd.Name, Kind: cmd.Kind, Revertable: cmd.Revertable}
	scopes := paramScopes(cmd, networkID)
	for i, p := range cmd.Params {
		rendering := r.Format(ctx, p.Value, scopes[i])
		d.Params = append(d.Params, ParamDisplay{
			Name:    p.Name,
			Display: ui.StyledText{Text: rendering.Display, Severity: rendering.Severity},
			Raw:     rawMessage(rendering.Raw),
		})
	}
	return d
}

// rawMessage embeds a raw serialization verbatim when it is valid JSON and
// quotes it otherwise, so the view-model always marshals.
func rawMessage(raw string) json.RawMessage {
	if json.Valid([]byte(raw)) {
		return json.RawMessage(raw)
	}
	quoted, _ := json.Marshal(raw)
	return quoted
}

// paramScopes derives each parameter's contextual currency from its
// siblings: input-side amounts denominate in the path's first token,
// output-side amounts in its last, plain amounts in the sibling token param,
// and wrap/unwrap amounts in the native asset. Parameters with no derivable
// currency render unscaled.
func paramScopes(cmd common.Command, networkID string) []renderer.Scope {
	scopes := make([]renderer.Scope, len(cmd.Params))
	for i := range scopes {
		scopes[i] = renderer.Scope{NetworkID: networkID}
	}

	token := ""
	if cmd.Kind == common.CommandKindWrap {
		token = common.NativeAddress
	} else if v, found := paramValue(cmd, "token"); found {
		token, _ = v.(string)
	}
	first, last := pathEndpoints(cmd)

	for i, p := range cmd.Params {
		switch p.Name {
		case "amountIn", "amountInMax":
			scopes[i].ContextualCurrency = first
		case "amountOut", "amountOutMin":
			scopes[i].ContextualCurrency = last
		case "amount", "amountMin", "value", "minBalance":
			scopes[i].ContextualCurrency = token
		}
	}
	return scopes
}

func paramValue(cmd common.Command, name string) (any, bool) {
	for _, p := range cmd.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// pathEndpoints reads the first and last token of a swap's path param, for
// either path shape: a plain address chain or fee-tier hop maps.
func pathEndpoints(cmd common.Command) (first, last string) {
	v, found := paramValue(cmd, "path")
	if !found {
		return "", ""
	}
	seq, ok := v.([]any)
	if !ok || len(seq) == 0 {
		return "", ""
	}
	switch el := seq[0].(type) {
	case string:
		first = el
		if s, ok := seq[len(seq)-1].(string); ok {
			last = s
		}
	case map[string]any:
		first, _ = el["tokenIn"].(string)
		if hop, ok := seq[len(seq)-1].(map[string]any); ok {
			last, _ = hop["tokenOut"].(string)
		}
	}
	return first, last
}

// ── Print phase (reads only from the display struct, colours via u.Style) ───

// PrintCallDisplay writes a decoded plan to u: a summary block, then one
// section per command with single-line params batched into a table and
// multi-line renderings indented beneath.
func PrintCallDisplay(u ui.UI, d *CallDisplay) {
	rows := [][2]string{
		{"Network", d.Network},
		{"Selector", d.Selector},
	}
	if d.Deadline != "" {
		rows = append(rows, [2]string{"Deadline", d.Deadline})
	}
	rows = append(rows, [2]string{"Commands", fmt.Sprintf("%d", len(d.Commands))})
	u.KeyValue(rows)

	for i := range d.Commands {
		printCommandDisplay(u, &d.Commands[i])
	}
}

func printCommandDisplay(u ui.UI, cmd *CommandDisplay) {
	title := fmt.Sprintf("Command %d: %s", cmd.Index, cmd.Name)
	if cmd.Revertable {
		title += " (may revert)"
	}
	u.Section(title)

	var rows [][]string
	for _, p := range cmd.Params {
		if !strings.Contains(p.Display.Text, "\n") {
			rows = append(rows, []string{p.Name, u.Style(p.Display)})
		}
	}
	if len(rows) > 0 {
		u.Table([]string{"Parameter", "Value"}, rows)
	}

	for _, p := range cmd.Params {
		if strings.Contains(p.Display.Text, "\n") {
			printMultilineParam(u, p)
		}
	}
}

// printMultilineParam renders a block value (a swap card, a named-field
// bundle) under its parameter name, one indented line each, keeping the
// whole block's severity.
func printMultilineParam(u ui.UI, p ParamDisplay) {
	u.Info("%s:", p.Name)
	child := u.Indent()
	for _, line := range strings.Split(p.Display.Text, "\n") {
		child.Info("%s", child.Style(ui.StyledText{Text: line, Severity: p.Display.Severity}))
	}
}
