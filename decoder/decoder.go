// Package decoder turns raw Universal Router calldata into the plain
// command tree the formatter consumes. It is purely computational: no
// network access, no registry lookups, no formatting decisions.
package decoder

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"

	"github.com/routelens/routelens/common"
)

var log zerolog.Logger

func init() {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log = zerolog.New(out).With().Timestamp().Str("component", "decoder").Logger()
}

// ErrNotRouterCall reports calldata whose selector is not one of the two
// router execute entrypoints.
var ErrNotRouterCall = errors.New("not a router execute call")

// The router exposes execute(bytes,bytes[]) and
// execute(bytes,bytes[],uint256). Anything else is not an execution plan.
var (
	selectorExecute         = [4]byte{0x24, 0x85, 0x6b, 0xc3}
	selectorExecuteDeadline = [4]byte{0x35, 0x93, 0x56, 0x4c}

	executeArgs = abi.Arguments{
		{Name: "commands", Type: typeBytes},
		{Name: "inputs", Type: typeBytesArr},
	}
	executeDeadlineArgs = abi.Arguments{
		{Name: "commands", Type: typeBytes},
		{Name: "inputs", Type: typeBytesArr},
		{Name: "deadline", Type: typeUint256},
	}
)

// The low bits of a command byte select the command, the high bit marks it
// revert-tolerant.
const (
	commandTypeMask byte = 0x3f
	flagAllowRevert byte = 0x80
)

// DecodeCall parses router calldata into an execution plan. Calldata for
// any other function reports ErrNotRouterCall. A command whose input blob
// does not match its schema degrades to a raw hex param rather than failing
// the whole plan; only a structurally broken outer envelope is an error.
func DecodeCall(data []byte) (*common.Call, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("calldata of %d bytes has no selector: %w", len(data), ErrNotRouterCall)
	}
	var selector [4]byte
	copy(selector[:], data[:4])

	var args abi.Arguments
	switch selector {
	case selectorExecute:
		args = executeArgs
	case selectorExecuteDeadline:
		args = executeDeadlineArgs
	default:
		return nil, fmt.Errorf("selector %s: %w", hexutil.Encode(selector[:]), ErrNotRouterCall)
	}

	values, err := args.UnpackValues(data[4:])
	if err != nil {
		return nil, fmt.Errorf("unpacking execute arguments: %w", err)
	}

	call := &common.Call{Selector: hexutil.Encode(selector[:])}
	if len(values) == 3 {
		call.Deadline = values[2].(*big.Int)
	}

	call.Commands, err = decodePlan(values[0].([]byte), values[1].([][]byte))
	if err != nil {
		return nil, err
	}

	log.Debug().Str("selector", call.Selector).Int("commands", len(call.Commands)).Msg("decoded router plan")
	return call, nil
}

// decodePlan pairs each command byte with its input blob.
func decodePlan(commands []byte, inputs [][]byte) ([]common.Command, error) {
	if len(commands) != len(inputs) {
		return nil, fmt.Errorf("plan carries %d commands but %d inputs", len(commands), len(inputs))
	}
	decoded := make([]common.Command, 0, len(commands))
	for i, b := range commands {
		decoded = append(decoded, decodeCommand(b, inputs[i]))
	}
	return decoded, nil
}

func decodeCommand(b byte, input []byte) common.Command {
	revertable := b&flagAllowRevert != 0
	masked := b & commandTypeMask

	def, known := commandDefs[masked]
	if !known {
		return common.Command{
			Name:       fmt.Sprintf("UNKNOWN_COMMAND_0x%02x", masked),
			Kind:       common.CommandKindUnknown,
			Revertable: revertable,
			Params:     []common.Param{{Name: "calldata", Value: hexutil.Encode(input)}},
		}
	}

	params, err := def.decode(input)
	if err != nil {
		log.Debug().Err(err).Str("command", def.name).Msg("input blob does not match the command schema, keeping raw hex")
		params = []common.Param{{Name: "calldata", Value: hexutil.Encode(input)}}
	}
	return common.Command{Name: def.name, Kind: def.kind, Revertable: revertable, Params: params}
}
