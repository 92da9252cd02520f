package decoder

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/routelens/routelens/common"
)

// V4 action bytes this decoder understands. Liquidity-management actions are
// left to the generic unknown fallback.
const (
	actionSwapExactInSingle  byte = 0x06
	actionSwapExactIn        byte = 0x07
	actionSwapExactOutSingle byte = 0x08
	actionSwapExactOut       byte = 0x09
	actionSettle             byte = 0x0b
	actionSettleAll          byte = 0x0c
	actionSettlePair         byte = 0x0d
	actionTake               byte = 0x0e
	actionTakeAll            byte = 0x0f
	actionTakePortion        byte = 0x10
)

type actionDef struct {
	name string
	args abi.Arguments
}

var actionDefs = map[byte]actionDef{
	actionSwapExactInSingle: {name: "SWAP_EXACT_IN_SINGLE", args: abi.Arguments{
		{Name: "swap", Type: typeSwapExactInSingle},
	}},
	actionSwapExactIn: {name: "SWAP_EXACT_IN", args: abi.Arguments{
		{Name: "swap", Type: typeSwapExactIn},
	}},
	actionSwapExactOutSingle: {name: "SWAP_EXACT_OUT_SINGLE", args: abi.Arguments{
		{Name: "swap", Type: typeSwapExactOutSingle},
	}},
	actionSwapExactOut: {name: "SWAP_EXACT_OUT", args: abi.Arguments{
		{Name: "swap", Type: typeSwapExactOut},
	}},
	actionSettle: {name: "SETTLE", args: abi.Arguments{
		{Name: "currency", Type: typeAddress},
		{Name: "amount", Type: typeUint256},
		{Name: "payerIsUser", Type: typeBool},
	}},
	actionSettleAll: {name: "SETTLE_ALL", args: abi.Arguments{
		{Name: "currency", Type: typeAddress},
		{Name: "maxAmount", Type: typeUint256},
	}},
	actionSettlePair: {name: "SETTLE_PAIR", args: abi.Arguments{
		{Name: "currency0", Type: typeAddress},
		{Name: "currency1", Type: typeAddress},
	}},
	actionTake: {name: "TAKE", args: abi.Arguments{
		{Name: "currency", Type: typeAddress},
		{Name: "recipient", Type: typeAddress},
		{Name: "amount", Type: typeUint256},
	}},
	actionTakeAll: {name: "TAKE_ALL", args: abi.Arguments{
		{Name: "currency", Type: typeAddress},
		{Name: "minAmount", Type: typeUint256},
	}},
	actionTakePortion: {name: "TAKE_PORTION", args: abi.Arguments{
		{Name: "currency", Type: typeAddress},
		{Name: "recipient", Type: typeAddress},
		{Name: "bips", Type: typeUint256},
	}},
}

var v4PlanArgs = abi.Arguments{
	{Name: "actions", Type: typeBytes},
	{Name: "params", Type: typeBytesArr},
}

// v4SwapDecoder splits a V4_SWAP input into its action bytes and per-action
// param blobs, decoding each action into one Param.
func v4SwapDecoder(input []byte) ([]common.Param, error) {
	values, err := v4PlanArgs.UnpackValues(input)
	if err != nil {
		return nil, err
	}
	actions := values[0].([]byte)
	actionParams := values[1].([][]byte)
	if len(actions) != len(actionParams) {
		return nil, fmt.Errorf("v4 plan carries %d actions but %d params", len(actions), len(actionParams))
	}

	params := make([]common.Param, 0, len(actions))
	for i, action := range actions {
		params = append(params, decodeV4Action(action, actionParams[i]))
	}
	return params, nil
}

func decodeV4Action(action byte, input []byte) common.Param {
	def, known := actionDefs[action]
	if !known {
		return common.Param{
			Name:  fmt.Sprintf("UNKNOWN_ACTION_0x%02x", action),
			Value: hexutil.Encode(input),
		}
	}

	values, err := def.args.UnpackValues(input)
	if err != nil {
		log.Debug().Err(err).Str("action", def.name).Msg("action params do not match the schema, keeping raw hex")
		return common.Param{Name: def.name, Value: hexutil.Encode(input)}
	}

	if len(def.args) == 1 {
		value := valueTree(def.args[0].Type, values[0])
		switch action {
		case actionSwapExactInSingle:
			value = singlePoolDescriptor(value, true)
		case actionSwapExactOutSingle:
			value = singlePoolDescriptor(value, false)
		}
		return common.Param{Name: def.name, Value: value}
	}

	fields := make([]any, 0, len(def.args))
	for i, arg := range def.args {
		fields = append(fields, map[string]any{
			"name":  arg.Name,
			"value": valueTree(arg.Type, values[i]),
		})
	}
	return common.Param{Name: def.name, Value: fields}
}

// singlePoolDescriptor rewrites a single-pool swap tuple into the swap
// descriptor shape: the pool's two currencies become input and output
// according to the swap direction. Tick spacing, hook address and hook data
// do not survive the rewrite.
func singlePoolDescriptor(value any, exactIn bool) any {
	m, ok := value.(map[string]any)
	if !ok {
		return value
	}
	poolKey, ok := m["poolKey"].([]any)
	if !ok {
		return value
	}

	currency0 := namedFieldValue(poolKey, "currency0")
	currency1 := namedFieldValue(poolKey, "currency1")
	zeroForOne, _ := m["zeroForOne"].(bool)

	desc := map[string]any{}
	if zeroForOne {
		desc["currencyIn"], desc["currencyOut"] = currency0, currency1
	} else {
		desc["currencyIn"], desc["currencyOut"] = currency1, currency0
	}
	if fee := namedFieldValue(poolKey, "fee"); fee != nil {
		desc["fee"] = fee
	}
	if exactIn {
		desc["amountIn"] = m["amountIn"]
		desc["amountOutMinimum"] = m["amountOutMinimum"]
	} else {
		desc["amountOut"] = m["amountOut"]
		desc["amountInMaximum"] = m["amountInMaximum"]
	}
	return desc
}
