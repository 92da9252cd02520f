package util_test

import (
	"context"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/routelens/routelens/common"
	"github.com/routelens/routelens/networks"
	"github.com/routelens/routelens/renderer"
	"github.com/routelens/routelens/tokendb"
	"github.com/routelens/routelens/ui"
	"github.com/routelens/routelens/util"
)

const (
	wethAddr = "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"
	usdcAddr = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
)

// fixedRegistry resolves from a static token set, the way a loaded snapshot
// would.
type fixedRegistry map[string]tokendb.Token

func (f fixedRegistry) Resolve(ctx context.Context, address string, networkID string) (tokendb.Token, bool) {
	if common.IsNativeAddress(address) {
		return tokendb.Token{Symbol: "ETH", Decimals: 18, ContractAddress: common.NativeAddress}, true
	}
	token, found := f[strings.ToLower(address)]
	return token, found
}

func testRenderer() *renderer.Renderer {
	return renderer.NewRenderer(fixedRegistry{
		wethAddr: {Symbol: "WETH", Decimals: 18, ContractAddress: wethAddr},
		usdcAddr: {Symbol: "USDC", Decimals: 6, ContractAddress: usdcAddr},
	})
}

// planFixture is a three-command plan covering the three parameter shapes
// the printer distinguishes: scalar rows, a path row, and a multi-line swap
// block.
func planFixture() *common.Call {
	return &common.Call{
		Selector: "0x3593564c",
		Deadline: big.NewInt(1724572800),
		Commands: []common.Command{
			{
				Name: "V3_SWAP_EXACT_IN",
				Kind: common.CommandKindSwap,
				Params: []common.Param{
					{Name: "recipient", Value: common.MsgSenderAddress},
					{Name: "amountIn", Value: "1000000000000000000"},
					{Name: "amountOutMin", Value: "2500000000"},
					{Name: "path", Value: []any{
						map[string]any{"tokenIn": wethAddr, "tokenOut": usdcAddr, "fee": int64(500)},
					}},
					{Name: "payerIsUser", Value: true},
				},
			},
			{
				Name:       "UNWRAP_WETH",
				Kind:       common.CommandKindWrap,
				Revertable: true,
				Params: []common.Param{
					{Name: "recipient", Value: common.MsgSenderAddress},
					{Name: "amountMin", Value: "990000000000000000"},
				},
			},
			{
				Name: "V4_SWAP",
				Kind: common.CommandKindSwap,
				Params: []common.Param{
					{Name: "SWAP_EXACT_IN_SINGLE", Value: map[string]any{
						"currencyIn":       wethAddr,
						"currencyOut":      usdcAddr,
						"fee":              int64(500),
						"amountIn":         "1000000000000000000",
						"amountOutMinimum": "2500000000",
					}},
				},
			},
		},
	}
}

// ---------------------------------------------------------------------------
// Test 1: view-model values (data correctness)
// ---------------------------------------------------------------------------

func TestCallDisplayValues(t *testing.T) {
	d := util.BuildCallDisplay(context.Background(), planFixture(), testRenderer(), networks.EthereumMainnet)

	if d.Network != "mainnet" {
		t.Errorf("network = %q", d.Network)
	}
	if d.Selector != "0x3593564c" {
		t.Errorf("selector = %q", d.Selector)
	}
	if d.Deadline != "1724572800 (2024-08-25T08:00:00Z)" {
		t.Errorf("deadline = %q", d.Deadline)
	}
	if len(d.Commands) != 3 {
		t.Fatalf("commands = %d, want 3", len(d.Commands))
	}

	swap := d.Commands[0]
	// The amount params pick up their currency from the sibling path.
	if got := swap.Params[1]; got.Display.Text != "1 WETH" || got.Display.Severity != ui.SeveritySuccess {
		t.Errorf("amountIn = %+v", got.Display)
	}
	if got := swap.Params[2].Display.Text; got != "2500 USDC" {
		t.Errorf("amountOutMin = %q", got)
	}
	if got := swap.Params[3].Display.Text; got != "WETH →(0.05%) USDC" {
		t.Errorf("path = %q", got)
	}
	if got := string(swap.Params[1].Raw); got != `"1000000000000000000"` {
		t.Errorf("amountIn raw = %s", got)
	}
	if !strings.Contains(string(swap.Params[3].Raw), `"fee":500`) {
		t.Errorf("path raw = %s", swap.Params[3].Raw)
	}

	unwrap := d.Commands[1]
	if !unwrap.Revertable {
		t.Errorf("unwrap should carry the revert flag")
	}
	if got := unwrap.Params[1].Display.Text; got != "0.99 ETH" {
		t.Errorf("amountMin = %q", got)
	}

	v4 := d.Commands[2]
	want := "From: WETH\nTo: USDC\nAmount In: 1 WETH\nMin Out: 2500 USDC"
	if got := v4.Params[0]; got.Display.Text != want || got.Display.Severity != ui.SeverityCritical {
		t.Errorf("v4 swap = %+v", got.Display)
	}
}

// ---------------------------------------------------------------------------
// Test 2: UI representation (RecordingUI entries)
// ---------------------------------------------------------------------------

func TestCallDisplayUIRepresentation(t *testing.T) {
	rec := ui.NewRecordingUI()
	d := util.BuildCallDisplay(context.Background(), planFixture(), testRenderer(), networks.EthereumMainnet)
	util.PrintCallDisplay(rec, d)

	sections := filterEntries(rec.Entries(), "Section")
	wantSections := []string{
		"Command 0: V3_SWAP_EXACT_IN",
		"Command 1: UNWRAP_WETH (may revert)",
		"Command 2: V4_SWAP",
	}
	assertLines(t, "section", sections, wantSections)

	keyValues := filterEntries(rec.Entries(), "KeyValue")
	wantKeyValues := []string{
		"Network | mainnet",
		"Selector | 0x3593564c",
		"Deadline | 1724572800 (2024-08-25T08:00:00Z)",
		"Commands | 3",
	}
	assertLines(t, "summary", keyValues, wantKeyValues)

	tableRows := filterEntries(rec.Entries(), "Table")
	wantRows := []string{
		"Parameter | Value",
		"recipient | MSG_SENDER (0x0000...0001)",
		"amountIn | 1 WETH",
		"amountOutMin | 2500 USDC",
		"path | WETH →(0.05%) USDC",
		"payerIsUser | true",
		"Parameter | Value",
		"recipient | MSG_SENDER (0x0000...0001)",
		"amountMin | 0.99 ETH",
	}
	assertLines(t, "table", tableRows, wantRows)

	// The swap block prints as indented Info lines, not table rows.
	infos := filterEntries(rec.Entries(), "Info")
	wantInfos := []string{
		"SWAP_EXACT_IN_SINGLE:",
		"From: WETH",
		"To: USDC",
		"Amount In: 1 WETH",
		"Min Out: 2500 USDC",
	}
	assertLines(t, "info", infos, wantInfos)
}

// ---------------------------------------------------------------------------
// Test 3: command order survives the concurrent build
// ---------------------------------------------------------------------------

func TestBuildCallDisplayPreservesOrder(t *testing.T) {
	call := &common.Call{Selector: "0x24856bc3"}
	for i := 0; i < 30; i++ {
		call.Commands = append(call.Commands, common.Command{
			Name: "WRAP_ETH",
			Kind: common.CommandKindWrap,
			Params: []common.Param{
				{Name: "amount", Value: big.NewInt(int64(i))},
			},
		})
	}

	d := util.BuildCallDisplay(context.Background(), call, testRenderer(), networks.EthereumMainnet)
	for i, cmd := range d.Commands {
		if cmd.Index != i {
			t.Fatalf("command at position %d has index %d", i, cmd.Index)
		}
		if string(cmd.Params[0].Raw) != strconv.Itoa(i) {
			t.Errorf("command %d raw = %s", i, cmd.Params[0].Raw)
		}
	}
}

// ---------------------------------------------------------------------------
// Test 4: JSON output carries plain strings
// ---------------------------------------------------------------------------

func TestCallDisplayJSON(t *testing.T) {
	d := util.BuildCallDisplay(context.Background(), planFixture(), testRenderer(), networks.EthereumMainnet)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshalling view-model: %s", err)
	}

	out := string(b)
	if !strings.Contains(out, `"display":"1 WETH"`) {
		t.Errorf("styled display should marshal as a plain string: %s", out)
	}
	if strings.Contains(out, "Severity") {
		t.Errorf("severity must not leak into JSON: %s", out)
	}
	// Raw embeds as real JSON, not an escaped string.
	if !strings.Contains(out, `"raw":[{"fee":500`) {
		t.Errorf("path raw should embed verbatim: %s", out)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func filterEntries(entries []ui.Entry, method string) []string {
	var values []string
	for _, e := range entries {
		if e.Method == method {
			values = append(values, e.Value)
		}
	}
	return values
}

func assertLines(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: expected %d entries, got %d", label, len(want), len(got))
		for i, line := range got {
			t.Logf("  [%d] %q", i, line)
		}
		t.FailNow()
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("%s row %d:\n  want: %q\n   got: %q", label, i, w, got[i])
		}
	}
}
