package common

import "math/big"

// Param is one named parameter of a decoded router command. Value is a plain
// Go tree (nil, bool, string, native ints, *big.Int, []any, map[string]any)
// so that the renderer can classify it structurally without knowing which
// command produced it.
type Param struct {
	Name  string
	Value any
}

// Coarse command groupings carried on Command.Kind.
const (
	CommandKindSwap     = "swap"
	CommandKindPermit   = "permit"
	CommandKindFunds    = "funds"
	CommandKindWrap     = "wrap"
	CommandKindCheck    = "check"
	CommandKindPosition = "position"
	CommandKindPlan     = "plan"
	CommandKindUnknown  = "unknown"
)

// Command is one instruction of a router execution plan.
type Command struct {
	Name       string
	Kind       string
	Revertable bool
	Params     []Param
}

// Call is a fully decoded router invocation.
type Call struct {
	Selector string
	Deadline *big.Int
	Commands []Command
}
