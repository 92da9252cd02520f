package decoder

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/routelens/routelens/common"
)

type commandDef struct {
	name   string
	kind   string
	decode func(input []byte) ([]common.Param, error)
}

// commandDefs maps masked command bytes to their schema. Populated in init
// rather than a literal because the sub-plan decoder recurses into
// decodeCommand, which reads this very table.
var commandDefs map[byte]commandDef

func init() {
	commandDefs = map[byte]commandDef{
		0x00: {name: "V3_SWAP_EXACT_IN", kind: common.CommandKindSwap, decode: v3SwapDecoder(false)},
		0x01: {name: "V3_SWAP_EXACT_OUT", kind: common.CommandKindSwap, decode: v3SwapDecoder(true)},
		0x02: {name: "PERMIT2_TRANSFER_FROM", kind: common.CommandKindFunds, decode: argsDecoder(abi.Arguments{
			{Name: "token", Type: typeAddress},
			{Name: "recipient", Type: typeAddress},
			{Name: "amount", Type: typeUint160},
		})},
		0x03: {name: "PERMIT2_PERMIT_BATCH", kind: common.CommandKindPermit, decode: argsDecoder(abi.Arguments{
			{Name: "permit", Type: typePermitBatch},
			{Name: "signature", Type: typeBytes},
		})},
		0x04: {name: "SWEEP", kind: common.CommandKindFunds, decode: argsDecoder(abi.Arguments{
			{Name: "token", Type: typeAddress},
			{Name: "recipient", Type: typeAddress},
			{Name: "amountMin", Type: typeUint256},
		})},
		0x05: {name: "TRANSFER", kind: common.CommandKindFunds, decode: argsDecoder(abi.Arguments{
			{Name: "token", Type: typeAddress},
			{Name: "recipient", Type: typeAddress},
			{Name: "value", Type: typeUint256},
		})},
		0x06: {name: "PAY_PORTION", kind: common.CommandKindFunds, decode: argsDecoder(abi.Arguments{
			{Name: "token", Type: typeAddress},
			{Name: "recipient", Type: typeAddress},
			{Name: "bips", Type: typeUint256},
		})},
		0x08: {name: "V2_SWAP_EXACT_IN", kind: common.CommandKindSwap, decode: argsDecoder(abi.Arguments{
			{Name: "recipient", Type: typeAddress},
			{Name: "amountIn", Type: typeUint256},
			{Name: "amountOutMin", Type: typeUint256},
			{Name: "path", Type: typeAddressArr},
			{Name: "payerIsUser", Type: typeBool},
		})},
		0x09: {name: "V2_SWAP_EXACT_OUT", kind: common.CommandKindSwap, decode: argsDecoder(abi.Arguments{
			{Name: "recipient", Type: typeAddress},
			{Name: "amountOut", Type: typeUint256},
			{Name: "amountInMax", Type: typeUint256},
			{Name: "path", Type: typeAddressArr},
			{Name: "payerIsUser", Type: typeBool},
		})},
		0x0a: {name: "PERMIT2_PERMIT", kind: common.CommandKindPermit, decode: argsDecoder(abi.Arguments{
			{Name: "permit", Type: typePermitSingle},
			{Name: "signature", Type: typeBytes},
		})},
		0x0b: {name: "WRAP_ETH", kind: common.CommandKindWrap, decode: argsDecoder(abi.Arguments{
			{Name: "recipient", Type: typeAddress},
			{Name: "amount", Type: typeUint256},
		})},
		0x0c: {name: "UNWRAP_WETH", kind: common.CommandKindWrap, decode: argsDecoder(abi.Arguments{
			{Name: "recipient", Type: typeAddress},
			{Name: "amountMin", Type: typeUint256},
		})},
		0x0d: {name: "PERMIT2_TRANSFER_FROM_BATCH", kind: common.CommandKindFunds, decode: argsDecoder(abi.Arguments{
			{Name: "transfers", Type: typeAllowanceTransfers},
		})},
		0x0e: {name: "BALANCE_CHECK_ERC20", kind: common.CommandKindCheck, decode: argsDecoder(abi.Arguments{
			{Name: "owner", Type: typeAddress},
			{Name: "token", Type: typeAddress},
			{Name: "minBalance", Type: typeUint256},
		})},
		0x10: {name: "V4_SWAP", kind: common.CommandKindSwap, decode: v4SwapDecoder},
		0x11: {name: "V3_POSITION_MANAGER_PERMIT", kind: common.CommandKindPosition, decode: rawDecoder},
		0x12: {name: "V3_POSITION_MANAGER_CALL", kind: common.CommandKindPosition, decode: rawDecoder},
		0x13: {name: "V4_INITIALIZE_POOL", kind: common.CommandKindPosition, decode: argsDecoder(abi.Arguments{
			{Name: "poolKey", Type: typePoolKey},
			{Name: "sqrtPriceX96", Type: typeUint160},
		})},
		0x14: {name: "V4_POSITION_MANAGER_CALL", kind: common.CommandKindPosition, decode: rawDecoder},
		0x21: {name: "EXECUTE_SUB_PLAN", kind: common.CommandKindPlan, decode: subPlanDecoder},
	}
}

// argsDecoder unpacks input against a fixed argument list, one Param per
// argument.
func argsDecoder(args abi.Arguments) func([]byte) ([]common.Param, error) {
	return func(input []byte) ([]common.Param, error) {
		values, err := args.UnpackValues(input)
		if err != nil {
			return nil, err
		}
		params := make([]common.Param, 0, len(args))
		for i, arg := range args {
			params = append(params, common.Param{Name: arg.Name, Value: valueTree(arg.Type, values[i])})
		}
		return params, nil
	}
}

// v3SwapDecoder handles the two packed-path V3 swaps. The path argument is
// a bytes blob on the wire but expands to fee-tier hops here.
func v3SwapDecoder(exactOut bool) func([]byte) ([]common.Param, error) {
	amountName, boundName := "amountIn", "amountOutMin"
	if exactOut {
		amountName, boundName = "amountOut", "amountInMax"
	}
	args := abi.Arguments{
		{Name: "recipient", Type: typeAddress},
		{Name: amountName, Type: typeUint256},
		{Name: boundName, Type: typeUint256},
		{Name: "path", Type: typeBytes},
		{Name: "payerIsUser", Type: typeBool},
	}
	return func(input []byte) ([]common.Param, error) {
		values, err := args.UnpackValues(input)
		if err != nil {
			return nil, err
		}
		params := make([]common.Param, 0, len(args))
		for i, arg := range args {
			value := valueTree(arg.Type, values[i])
			if arg.Name == "path" {
				value = parseV3Path(values[i].([]byte), exactOut)
			}
			params = append(params, common.Param{Name: arg.Name, Value: value})
		}
		return params, nil
	}
}

// rawDecoder keeps calldata forwarded verbatim to another contract, such as
// the position-manager commands, as a single hex param.
func rawDecoder(input []byte) ([]common.Param, error) {
	return []common.Param{{Name: "calldata", Value: hexutil.Encode(input)}}, nil
}

// subPlanDecoder re-enters the command decoder on a nested plan. Each nested
// command flattens into one param whose value is the command's own params as
// a named-field list.
func subPlanDecoder(input []byte) ([]common.Param, error) {
	values, err := executeArgs.UnpackValues(input)
	if err != nil {
		return nil, err
	}
	nested, err := decodePlan(values[0].([]byte), values[1].([][]byte))
	if err != nil {
		return nil, err
	}
	params := make([]common.Param, 0, len(nested))
	for _, cmd := range nested {
		name := cmd.Name
		if cmd.Revertable {
			name += " (may revert)"
		}
		fields := make([]any, 0, len(cmd.Params))
		for _, p := range cmd.Params {
			fields = append(fields, map[string]any{"name": p.Name, "value": p.Value})
		}
		params = append(params, common.Param{Name: name, Value: fields})
	}
	return params, nil
}
