package util

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/routelens/routelens/ui"
)

// ParamDisplay is the view-model for one rendered command parameter. Display
// is a StyledText — the plain text serializes cleanly to JSON while the
// Severity annotation drives terminal colouring via u.Style. Raw is the
// structural serialization of the decoded value, embedded verbatim so JSON
// consumers see real arrays and objects rather than escaped strings.
type ParamDisplay struct {
	Name    string          `json:"name"`
	Display ui.StyledText   `json:"display"` // serializes as string
	Raw     json.RawMessage `json:"raw"`
}

// CommandDisplay is the view-model for one decoded router command.
type CommandDisplay struct {
	Index      int            `json:"index"`
	Name       string         `json:"name"`
	Kind       string         `json:"kind"`
	Revertable bool           `json:"revertable,omitempty"`
	Params     []ParamDisplay `json:"params,omitempty"`
}

// CallDisplay is the complete view-model for a decoded router call. JSON
// consumers receive clean plain strings with no ANSI codes.
type CallDisplay struct {
	Network  string           `json:"network"`
	Selector string           `json:"selector"`
	Deadline string           `json:"deadline,omitempty"`
	Commands []CommandDisplay `json:"commands"`
}

// deadlineString renders an execution deadline as its unix value plus, when
// it fits a sane timestamp, the UTC wall time.
func deadlineString(d *big.Int) string {
	if d == nil {
		return ""
	}
	if !d.IsInt64() {
		return d.String()
	}
	t := time.Unix(d.Int64(), 0).UTC()
	return fmt.Sprintf("%s (%s)", d.String(), t.Format(time.RFC3339))
}
