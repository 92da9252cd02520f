package decoder

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/routelens/routelens/common"
)

var (
	weth   = gethcommon.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	usdc   = gethcommon.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	dai    = gethcommon.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	sender = gethcommon.HexToAddress(common.MsgSenderAddress)
)

func lower(a gethcommon.Address) string {
	return strings.ToLower(a.Hex())
}

func packArgs(t *testing.T, args abi.Arguments, values ...any) []byte {
	t.Helper()
	packed, err := args.Pack(values...)
	if err != nil {
		t.Fatalf("packing %d values: %s", len(values), err)
	}
	return packed
}

func packExecute(t *testing.T, commands []byte, inputs [][]byte) []byte {
	t.Helper()
	return append(selectorExecute[:], packArgs(t, executeArgs, commands, inputs)...)
}

func decodeOne(t *testing.T, command byte, input []byte) common.Command {
	t.Helper()
	call, err := DecodeCall(packExecute(t, []byte{command}, [][]byte{input}))
	if err != nil {
		t.Fatalf("DecodeCall: %s", err)
	}
	if len(call.Commands) != 1 {
		t.Fatalf("decoded %d commands, want 1", len(call.Commands))
	}
	return call.Commands[0]
}

func TestDecodeCallRejectsForeignCalldata(t *testing.T) {
	if _, err := DecodeCall(hexutil.MustDecode("0xa9059cbb")); !errors.Is(err, ErrNotRouterCall) {
		t.Errorf("transfer selector: err = %v, want ErrNotRouterCall", err)
	}
	if _, err := DecodeCall([]byte{0x24}); !errors.Is(err, ErrNotRouterCall) {
		t.Errorf("truncated calldata: err = %v, want ErrNotRouterCall", err)
	}
}

func TestDecodeWrapWithDeadline(t *testing.T) {
	input := packArgs(t, abi.Arguments{
		{Type: typeAddress},
		{Type: typeUint256},
	}, gethcommon.HexToAddress(common.AddressThisAddress), big.NewInt(1000000000000000000))

	data := append(selectorExecuteDeadline[:],
		packArgs(t, executeDeadlineArgs, []byte{0x0b}, [][]byte{input}, big.NewInt(1724572800))...)

	call, err := DecodeCall(data)
	if err != nil {
		t.Fatalf("DecodeCall: %s", err)
	}
	if call.Selector != "0x3593564c" {
		t.Errorf("selector = %s", call.Selector)
	}
	if call.Deadline == nil || call.Deadline.Int64() != 1724572800 {
		t.Errorf("deadline = %v, want 1724572800", call.Deadline)
	}

	cmd := call.Commands[0]
	if cmd.Name != "WRAP_ETH" || cmd.Kind != common.CommandKindWrap || cmd.Revertable {
		t.Errorf("command = %+v", cmd)
	}
	if cmd.Params[0].Name != "recipient" || cmd.Params[0].Value != common.AddressThisAddress {
		t.Errorf("recipient param = %+v", cmd.Params[0])
	}
	if amount := cmd.Params[1].Value.(*big.Int); amount.String() != "1000000000000000000" {
		t.Errorf("amount = %s", amount)
	}
}

func TestDecodeCallWithoutDeadline(t *testing.T) {
	input := packArgs(t, abi.Arguments{
		{Type: typeAddress},
		{Type: typeUint256},
	}, sender, big.NewInt(5))

	call, err := DecodeCall(packExecute(t, []byte{0x0c}, [][]byte{input}))
	if err != nil {
		t.Fatalf("DecodeCall: %s", err)
	}
	if call.Selector != "0x24856bc3" {
		t.Errorf("selector = %s", call.Selector)
	}
	if call.Deadline != nil {
		t.Errorf("deadline = %v, want nil", call.Deadline)
	}
	if call.Commands[0].Name != "UNWRAP_WETH" {
		t.Errorf("command = %s", call.Commands[0].Name)
	}
}

func TestDecodeV2SwapPathAsAddresses(t *testing.T) {
	input := packArgs(t, abi.Arguments{
		{Type: typeAddress},
		{Type: typeUint256},
		{Type: typeUint256},
		{Type: typeAddressArr},
		{Type: typeBool},
	}, sender, big.NewInt(1000000), big.NewInt(900000), []gethcommon.Address{weth, usdc, dai}, true)

	cmd := decodeOne(t, 0x08, input)
	if cmd.Name != "V2_SWAP_EXACT_IN" || cmd.Kind != common.CommandKindSwap {
		t.Fatalf("command = %+v", cmd)
	}
	if cmd.Params[1].Name != "amountIn" || cmd.Params[2].Name != "amountOutMin" {
		t.Errorf("param names = %s, %s", cmd.Params[1].Name, cmd.Params[2].Name)
	}

	path := cmd.Params[3].Value.([]any)
	want := []string{lower(weth), lower(usdc), lower(dai)}
	if len(path) != len(want) {
		t.Fatalf("path length = %d", len(path))
	}
	for i, addr := range want {
		if path[i] != addr {
			t.Errorf("path[%d] = %v, want %s", i, path[i], addr)
		}
	}
}

func TestDecodeV3SwapExactInPath(t *testing.T) {
	packed := append([]byte{}, weth.Bytes()...)
	packed = append(packed, 0x00, 0x0b, 0xb8) // 3000
	packed = append(packed, usdc.Bytes()...)

	input := packArgs(t, abi.Arguments{
		{Type: typeAddress},
		{Type: typeUint256},
		{Type: typeUint256},
		{Type: typeBytes},
		{Type: typeBool},
	}, sender, big.NewInt(1000000000000000000), big.NewInt(2500000000), packed, true)

	cmd := decodeOne(t, 0x00, input)
	if cmd.Params[1].Name != "amountIn" || cmd.Params[2].Name != "amountOutMin" {
		t.Errorf("param names = %s, %s", cmd.Params[1].Name, cmd.Params[2].Name)
	}

	hops := cmd.Params[3].Value.([]any)
	if len(hops) != 1 {
		t.Fatalf("hops = %d, want 1", len(hops))
	}
	hop := hops[0].(map[string]any)
	if hop["tokenIn"] != lower(weth) || hop["tokenOut"] != lower(usdc) || hop["fee"].(int64) != 3000 {
		t.Errorf("hop = %v", hop)
	}
}

func TestDecodeV3SwapExactOutReordersPath(t *testing.T) {
	// Exact-output routes pack the output token first; decoded hops read in
	// flow direction anyway.
	packed := append([]byte{}, usdc.Bytes()...)
	packed = append(packed, 0x00, 0x01, 0xf4) // 500
	packed = append(packed, weth.Bytes()...)

	input := packArgs(t, abi.Arguments{
		{Type: typeAddress},
		{Type: typeUint256},
		{Type: typeUint256},
		{Type: typeBytes},
		{Type: typeBool},
	}, sender, big.NewInt(2500000000), big.NewInt(1100000000000000000), packed, true)

	cmd := decodeOne(t, 0x01, input)
	if cmd.Name != "V3_SWAP_EXACT_OUT" {
		t.Fatalf("command = %s", cmd.Name)
	}
	if cmd.Params[1].Name != "amountOut" || cmd.Params[2].Name != "amountInMax" {
		t.Errorf("param names = %s, %s", cmd.Params[1].Name, cmd.Params[2].Name)
	}

	hop := cmd.Params[3].Value.([]any)[0].(map[string]any)
	if hop["tokenIn"] != lower(weth) || hop["tokenOut"] != lower(usdc) || hop["fee"].(int64) != 500 {
		t.Errorf("hop = %v", hop)
	}
}

func TestDecodeV3PathMalformedKeepsHex(t *testing.T) {
	input := packArgs(t, abi.Arguments{
		{Type: typeAddress},
		{Type: typeUint256},
		{Type: typeUint256},
		{Type: typeBytes},
		{Type: typeBool},
	}, sender, big.NewInt(1), big.NewInt(1), []byte{0x01, 0x02}, true)

	cmd := decodeOne(t, 0x00, input)
	if cmd.Params[3].Value != "0x0102" {
		t.Errorf("path = %v, want raw hex", cmd.Params[3].Value)
	}
}

func TestDecodeRevertFlag(t *testing.T) {
	input := packArgs(t, abi.Arguments{
		{Type: typeAddress},
		{Type: typeAddress},
		{Type: typeUint256},
	}, weth, sender, big.NewInt(0))

	cmd := decodeOne(t, 0x04|flagAllowRevert, input)
	if cmd.Name != "SWEEP" || !cmd.Revertable {
		t.Errorf("command = %+v, want revertable SWEEP", cmd)
	}
}

func TestDecodeUnknownCommand(t *testing.T) {
	cmd := decodeOne(t, 0x3e, []byte{0xca, 0xfe})
	if cmd.Name != "UNKNOWN_COMMAND_0x3e" || cmd.Kind != common.CommandKindUnknown {
		t.Fatalf("command = %+v", cmd)
	}
	if cmd.Params[0].Name != "calldata" || cmd.Params[0].Value != "0xcafe" {
		t.Errorf("params = %+v", cmd.Params)
	}
}

func TestDecodeMismatchedInputDegradesToHex(t *testing.T) {
	cmd := decodeOne(t, 0x04, []byte{0x01})
	if cmd.Name != "SWEEP" {
		t.Fatalf("command = %s", cmd.Name)
	}
	if cmd.Params[0].Name != "calldata" || cmd.Params[0].Value != "0x01" {
		t.Errorf("params = %+v", cmd.Params)
	}
}

type testPermitDetails struct {
	Token      gethcommon.Address
	Amount     *big.Int
	Expiration *big.Int
	Nonce      *big.Int
}

type testPermitSingle struct {
	Details     testPermitDetails
	Spender     gethcommon.Address
	SigDeadline *big.Int
}

func TestDecodePermitSingle(t *testing.T) {
	permit := testPermitSingle{
		Details: testPermitDetails{
			Token:      weth,
			Amount:     big.NewInt(1000000000000000000),
			Expiration: big.NewInt(1724572800),
			Nonce:      big.NewInt(3),
		},
		Spender:     dai,
		SigDeadline: big.NewInt(1724572800),
	}
	input := packArgs(t, abi.Arguments{
		{Type: typePermitSingle},
		{Type: typeBytes},
	}, permit, []byte{0xde, 0xad})

	cmd := decodeOne(t, 0x0a, input)
	if cmd.Name != "PERMIT2_PERMIT" || cmd.Kind != common.CommandKindPermit {
		t.Fatalf("command = %+v", cmd)
	}

	fields := cmd.Params[0].Value.([]any)
	if got := namedFieldValue(fields, "spender"); got != lower(dai) {
		t.Errorf("spender = %v", got)
	}
	details := namedFieldValue(fields, "details").([]any)
	if got := namedFieldValue(details, "token"); got != lower(weth) {
		t.Errorf("token = %v", got)
	}
	if got := namedFieldValue(details, "nonce").(*big.Int); got.Int64() != 3 {
		t.Errorf("nonce = %s", got)
	}
	if cmd.Params[1].Value != "0xdead" {
		t.Errorf("signature = %v", cmd.Params[1].Value)
	}
}

type testPoolKey struct {
	Currency0   gethcommon.Address
	Currency1   gethcommon.Address
	Fee         *big.Int
	TickSpacing *big.Int
	Hooks       gethcommon.Address
}

type testExactInSingle struct {
	PoolKey          testPoolKey
	ZeroForOne       bool
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
	HookData         []byte
}

func packV4Swap(t *testing.T, actions []byte, params [][]byte) []byte {
	t.Helper()
	return packArgs(t, v4PlanArgs, actions, params)
}

func TestDecodeV4SwapExactInSingle(t *testing.T) {
	pool := testPoolKey{
		Currency0:   weth,
		Currency1:   usdc,
		Fee:         big.NewInt(3000),
		TickSpacing: big.NewInt(60),
	}
	swap := testExactInSingle{
		PoolKey:          pool,
		ZeroForOne:       true,
		AmountIn:         big.NewInt(1000000000000000000),
		AmountOutMinimum: big.NewInt(2500000000),
		HookData:         []byte{},
	}
	actionInput := packArgs(t, abi.Arguments{{Type: typeSwapExactInSingle}}, swap)

	cmd := decodeOne(t, 0x10, packV4Swap(t, []byte{actionSwapExactInSingle}, [][]byte{actionInput}))
	if cmd.Name != "V4_SWAP" || cmd.Kind != common.CommandKindSwap {
		t.Fatalf("command = %+v", cmd)
	}
	if cmd.Params[0].Name != "SWAP_EXACT_IN_SINGLE" {
		t.Fatalf("action = %s", cmd.Params[0].Name)
	}

	desc := cmd.Params[0].Value.(map[string]any)
	if desc["currencyIn"] != lower(weth) || desc["currencyOut"] != lower(usdc) {
		t.Errorf("currencies = %v / %v", desc["currencyIn"], desc["currencyOut"])
	}
	if fee := desc["fee"].(*big.Int); fee.Int64() != 3000 {
		t.Errorf("fee = %s", fee)
	}
	if amount := desc["amountIn"].(*big.Int); amount.String() != "1000000000000000000" {
		t.Errorf("amountIn = %s", amount)
	}
	if _, found := desc["poolKey"]; found {
		t.Errorf("poolKey should not survive the descriptor rewrite")
	}

	// The direction bit flips the pool currencies.
	swap.ZeroForOne = false
	actionInput = packArgs(t, abi.Arguments{{Type: typeSwapExactInSingle}}, swap)
	cmd = decodeOne(t, 0x10, packV4Swap(t, []byte{actionSwapExactInSingle}, [][]byte{actionInput}))
	desc = cmd.Params[0].Value.(map[string]any)
	if desc["currencyIn"] != lower(usdc) || desc["currencyOut"] != lower(weth) {
		t.Errorf("flipped currencies = %v / %v", desc["currencyIn"], desc["currencyOut"])
	}
}

type testPathKey struct {
	IntermediateCurrency gethcommon.Address
	Fee                  *big.Int
	TickSpacing          *big.Int
	Hooks                gethcommon.Address
	HookData             []byte
}

type testExactIn struct {
	CurrencyIn       gethcommon.Address
	Path             []testPathKey
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
}

func TestDecodeV4SwapExactInHopPath(t *testing.T) {
	swap := testExactIn{
		CurrencyIn: weth,
		Path: []testPathKey{
			{IntermediateCurrency: usdc, Fee: big.NewInt(500), TickSpacing: big.NewInt(10), HookData: []byte{}},
			{IntermediateCurrency: dai, Fee: big.NewInt(100), TickSpacing: big.NewInt(1), HookData: []byte{}},
		},
		AmountIn:         big.NewInt(1000000000000000000),
		AmountOutMinimum: big.NewInt(990000000000000000),
	}
	actionInput := packArgs(t, abi.Arguments{{Type: typeSwapExactIn}}, swap)

	cmd := decodeOne(t, 0x10, packV4Swap(t, []byte{actionSwapExactIn}, [][]byte{actionInput}))
	desc := cmd.Params[0].Value.(map[string]any)
	if desc["currencyIn"] != lower(weth) {
		t.Errorf("currencyIn = %v", desc["currencyIn"])
	}

	path := desc["path"].([]any)
	if len(path) != 2 {
		t.Fatalf("path length = %d", len(path))
	}
	first := path[0].(map[string]any)
	if first["intermediateCurrency"] != lower(usdc) {
		t.Errorf("first hop = %v", first)
	}
	if fee := first["fee"].(*big.Int); fee.Int64() != 500 {
		t.Errorf("first hop fee = %s", fee)
	}
	second := path[1].(map[string]any)
	if second["intermediateCurrency"] != lower(dai) {
		t.Errorf("second hop = %v", second)
	}
}

func TestDecodeV4SettleAndTake(t *testing.T) {
	settle := packArgs(t, abi.Arguments{
		{Type: typeAddress},
		{Type: typeUint256},
		{Type: typeBool},
	}, weth, big.NewInt(1000000000000000000), true)
	takeAll := packArgs(t, abi.Arguments{
		{Type: typeAddress},
		{Type: typeUint256},
	}, usdc, big.NewInt(2500000000))

	cmd := decodeOne(t, 0x10, packV4Swap(t, []byte{actionSettle, actionTakeAll}, [][]byte{settle, takeAll}))
	if len(cmd.Params) != 2 {
		t.Fatalf("params = %d, want 2", len(cmd.Params))
	}
	if cmd.Params[0].Name != "SETTLE" || cmd.Params[1].Name != "TAKE_ALL" {
		t.Fatalf("actions = %s, %s", cmd.Params[0].Name, cmd.Params[1].Name)
	}

	fields := cmd.Params[0].Value.([]any)
	if got := namedFieldValue(fields, "currency"); got != lower(weth) {
		t.Errorf("settle currency = %v", got)
	}
	if got := namedFieldValue(fields, "payerIsUser"); got != true {
		t.Errorf("payerIsUser = %v", got)
	}
}

func TestDecodeV4UnknownAction(t *testing.T) {
	cmd := decodeOne(t, 0x10, packV4Swap(t, []byte{0x00}, [][]byte{{0xbe, 0xef}}))
	if cmd.Params[0].Name != "UNKNOWN_ACTION_0x00" || cmd.Params[0].Value != "0xbeef" {
		t.Errorf("action param = %+v", cmd.Params[0])
	}
}

func TestDecodeInitializePool(t *testing.T) {
	pool := testPoolKey{
		Currency0:   weth,
		Currency1:   usdc,
		Fee:         big.NewInt(500),
		TickSpacing: big.NewInt(10),
	}
	input := packArgs(t, abi.Arguments{
		{Type: typePoolKey},
		{Type: typeUint160},
	}, pool, big.NewInt(1).Lsh(big.NewInt(1), 96))

	cmd := decodeOne(t, 0x13, input)
	if cmd.Name != "V4_INITIALIZE_POOL" || cmd.Kind != common.CommandKindPosition {
		t.Fatalf("command = %+v", cmd)
	}

	fields := cmd.Params[0].Value.([]any)
	if got := namedFieldValue(fields, "currency0"); got != lower(weth) {
		t.Errorf("currency0 = %v", got)
	}
	if got := namedFieldValue(fields, "tickSpacing").(*big.Int); got.Int64() != 10 {
		t.Errorf("tickSpacing = %s", got)
	}
}

func TestDecodeSubPlan(t *testing.T) {
	wrap := packArgs(t, abi.Arguments{
		{Type: typeAddress},
		{Type: typeUint256},
	}, gethcommon.HexToAddress(common.AddressThisAddress), big.NewInt(7))

	subPlan := packArgs(t, executeArgs, []byte{0x0b | flagAllowRevert}, [][]byte{wrap})

	cmd := decodeOne(t, 0x21, subPlan)
	if cmd.Name != "EXECUTE_SUB_PLAN" || cmd.Kind != common.CommandKindPlan {
		t.Fatalf("command = %+v", cmd)
	}
	if cmd.Params[0].Name != "WRAP_ETH (may revert)" {
		t.Fatalf("nested command = %s", cmd.Params[0].Name)
	}

	fields := cmd.Params[0].Value.([]any)
	if got := namedFieldValue(fields, "recipient"); got != common.AddressThisAddress {
		t.Errorf("nested recipient = %v", got)
	}
	if got := namedFieldValue(fields, "amount").(*big.Int); got.Int64() != 7 {
		t.Errorf("nested amount = %s", got)
	}
}

func TestDecodePositionManagerCallKeptRaw(t *testing.T) {
	cmd := decodeOne(t, 0x12, []byte{0x12, 0x34})
	if cmd.Name != "V3_POSITION_MANAGER_CALL" || cmd.Kind != common.CommandKindPosition {
		t.Fatalf("command = %+v", cmd)
	}
	if cmd.Params[0].Name != "calldata" || cmd.Params[0].Value != "0x1234" {
		t.Errorf("params = %+v", cmd.Params)
	}
}
