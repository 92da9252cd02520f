package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/routelens/routelens/tokendb"
	"github.com/routelens/routelens/ui"
)

var log zerolog.Logger

func init() {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log = zerolog.New(out).With().Timestamp().Str("component", "renderer").Logger()
}

// FullBalanceMarker is what the full-balance sentinel displays as, in every
// encoding. It is never scaled as a numeric amount.
const FullBalanceMarker = "use all available balance from a previous step"

// fallbackDecimals scales amounts whose currency the registry does not know.
const fallbackDecimals = 18

// Registry resolves token addresses to metadata. *tokendb.TokenDB satisfies
// it; tests substitute a fixture.
type Registry interface {
	Resolve(ctx context.Context, address string, networkID string) (tokendb.Token, bool)
}

// Scope carries the resolution context for one value. NetworkID scopes
// registry lookups. ContextualCurrency is the address of the token a sibling
// field has decided this amount is denominated in; empty means no currency
// context, which leaves amounts unscaled.
type Scope struct {
	NetworkID          string
	ContextualCurrency string
}

// Rendering is the dual output for one value. Display is the human-readable
// text. Raw is a structural serialization of the unmodified input and never
// depends on registry resolution, so it survives a failed fetch unchanged.
// Severity tags the display for the terminal styling layer and is not
// serialized.
type Rendering struct {
	Display  string      `json:"display"`
	Raw      string      `json:"raw"`
	Severity ui.Severity `json:"-"`
}

// Renderer formats decoded parameter values. It holds no state besides the
// registry, so one instance serves any number of concurrent Format calls.
type Renderer struct {
	registry Registry
}

func NewRenderer(registry Registry) *Renderer {
	return &Renderer{registry: registry}
}

// Format renders value under scope. It never returns an error and never
// panics: a failure while building the display degrades to a generic
// placeholder while raw keeps the best-effort serialization.
func (r *Renderer) Format(ctx context.Context, value any, scope Scope) Rendering {
	raw := rawString(value)
	display, severity := r.safeDisplay(ctx, value, scope)
	return Rendering{Display: display, Raw: raw, Severity: severity}
}

func (r *Renderer) safeDisplay(ctx context.Context, value any, scope Scope) (display string, severity ui.Severity) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Debug().Interface("panic", rec).Msg("value formatting panicked")
			display = "could not format this value"
			severity = ui.SeverityError
		}
	}()
	return r.display(ctx, value, scope)
}

// display dispatches on the classified kind. Classification happens once
// here; the per-kind routines trust the tag.
func (r *Renderer) display(ctx context.Context, value any, scope Scope) (string, ui.Severity) {
	switch Classify(value) {
	case KindNull:
		return "null", ui.SeverityInfo
	case KindFullBalance:
		return FullBalanceMarker, ui.SeverityInfo
	case KindBigAmount:
		return r.amountDisplay(ctx, value, scope)
	case KindAddress:
		return r.addressDisplay(ctx, value.(string), scope)
	case KindAddressPath:
		return r.addressPathDisplay(ctx, value.([]any), scope)
	case KindFeeTierPath:
		return r.feeTierPathDisplay(ctx, value.([]any), scope)
	case KindHopPath:
		return r.hopPathDisplay(ctx, value.([]any), scope)
	case KindNamedFieldList:
		return r.namedFieldDisplay(ctx, value.([]any), scope)
	case KindSwapDescriptor:
		return r.swapDisplay(ctx, value.(map[string]any), scope)
	case KindScalar:
		return literalDisplay(value), ui.SeverityInfo
	case KindOpaqueList:
		return fmt.Sprintf("sequence of %d items", len(value.([]any))), ui.SeverityInfo
	default:
		return "unrecognized value", ui.SeverityInfo
	}
}

// literalDisplay is the textual pass-through for scalars and for amount
// encodings that fail normalization.
func literalDisplay(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case *big.Int:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// rawString serializes the unmodified input as JSON, falling back to fmt
// when a value refuses to marshal. Registry state never feeds into it.
func rawString(value any) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}
