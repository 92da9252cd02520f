package tokendb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/routelens/routelens/common"
	"github.com/routelens/routelens/networks"
)

var log zerolog.Logger

func init() {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log = zerolog.New(out).With().Timestamp().Str("component", "tokendb").Logger()
}

// Token is one registry entry. ContractAddress is stored lowercased so
// lookups are case-insensitive.
type Token struct {
	Symbol          string  `json:"symbol"`
	Decimals        int32   `json:"decimals"`
	ContractAddress string  `json:"address"`
	LogoURI         string  `json:"logoURI,omitempty"`
	USDPrice        float64 `json:"usdPrice,omitempty"`
}

// NetworkDescriptor summarises one network of the registry snapshot.
type NetworkDescriptor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TokenCount int    `json:"token_count"`
}

// State tracks where a TokenDB is in its load lifecycle.
type State int32

const (
	StateUnfetched State = iota
	StateFetching
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateLoaded:
		return "loaded"
	default:
		return "unfetched"
	}
}

// TokenDB is a lazily loaded, process-wide snapshot of the token registry.
//
// The snapshot is fetched at most once per TokenDB, on the first call that
// needs it. Concurrent callers share that single fetch. A failed fetch is
// final: the TokenDB settles on an empty snapshot, every lookup simply
// reports unknown, and no retry is ever attempted. Resolution never returns
// an error and never blocks again once the snapshot has settled.
type TokenDB struct {
	url    string
	apiKey string
	client *http.Client

	once  sync.Once
	state atomic.Int32

	// Written once inside the sync.Once body. The Once's happens-before
	// edge makes them safe to read from any goroutine afterwards.
	byNetwork map[string]map[string]Token
	byAddress map[string]Token
	networks  []NetworkDescriptor
}

// NewTokenDB creates a TokenDB fetching from url with apiKey. An empty
// apiKey sends no auth header.
func NewTokenDB(url string, apiKey string) *TokenDB {
	return NewTokenDBWithClient(url, apiKey, &http.Client{Timeout: 15 * time.Second})
}

// NewTokenDBWithClient creates a TokenDB with a caller-supplied HTTP client.
func NewTokenDBWithClient(url string, apiKey string, client *http.Client) *TokenDB {
	return &TokenDB{
		url:       url,
		apiKey:    apiKey,
		client:    client,
		byNetwork: map[string]map[string]Token{},
		byAddress: map[string]Token{},
	}
}

// State reports the current load state.
func (db *TokenDB) State() State {
	return State(db.state.Load())
}

// EnsureLoaded fetches the registry snapshot if no attempt has been made
// yet, and blocks until the snapshot has settled. It is safe to call from
// any number of goroutines; exactly one of them performs the fetch. Fetch
// failure is absorbed here: the snapshot settles empty and EnsureLoaded
// still counts as done for every later call.
func (db *TokenDB) EnsureLoaded(ctx context.Context) {
	db.once.Do(func() {
		db.state.Store(int32(StateFetching))
		defer db.state.Store(int32(StateLoaded))

		if err := db.fetch(ctx); err != nil {
			log.Warn().Err(err).Str("url", db.url).
				Msg("token registry fetch failed, continuing with an empty snapshot")
		}
	})
}

type registryToken struct {
	Symbol   string  `json:"symbol"`
	Decimals int32   `json:"decimals"`
	Address  string  `json:"address"`
	LogoURI  string  `json:"logoURI"`
	USDPrice float64 `json:"usdPrice"`
}

type registryNetwork struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Tokens []registryToken `json:"tokens"`
}

type registryPayload struct {
	Networks []registryNetwork `json:"networks"`
}

func (db *TokenDB) fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, db.url, nil)
	if err != nil {
		return fmt.Errorf("building registry request: %w", err)
	}
	if db.apiKey != "" {
		req.Header.Set("x-api-key", db.apiKey)
	}
	if id, err := uuid.NewRandom(); err == nil {
		req.Header.Set("X-Request-Id", id.String())
	}

	resp, err := db.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching token registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token registry returned status %d", resp.StatusCode)
	}

	payload := registryPayload{}
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decoding token registry payload: %w", err)
	}

	tokenCount := 0
	for _, n := range payload.Networks {
		if n.ID == "" {
			continue
		}
		scoped, found := db.byNetwork[n.ID]
		if !found {
			scoped = map[string]Token{}
			db.byNetwork[n.ID] = scoped
		}
		count := 0
		for _, t := range n.Tokens {
			if t.Symbol == "" {
				continue
			}
			count++
			// Native entries carry no contract address. They count for
			// the network but resolution synthesises them instead.
			addr := strings.ToLower(t.Address)
			if addr == "" {
				continue
			}
			token := Token{
				Symbol:          t.Symbol,
				Decimals:        t.Decimals,
				ContractAddress: addr,
				LogoURI:         t.LogoURI,
				USDPrice:        t.USDPrice,
			}
			if _, found := scoped[addr]; !found {
				scoped[addr] = token
			}
			// Network-agnostic index: the first network listing an
			// address wins.
			if _, found := db.byAddress[addr]; !found {
				db.byAddress[addr] = token
			}
		}
		tokenCount += count
		db.networks = append(db.networks, NetworkDescriptor{
			ID:         n.ID,
			Name:       n.Name,
			TokenCount: count,
		})
	}

	log.Debug().Int("networks", len(db.networks)).Int("tokens", tokenCount).
		Msg("token registry snapshot loaded")
	return nil
}

// Resolve looks up the token metadata for address. The scoped entry for
// networkID wins; when the network does not know the address, the
// network-agnostic index is consulted as a fallback. The native token
// placeholder (empty or zero address) is synthesised from the network's
// native currency and never consults the snapshot, though the snapshot load
// is still triggered so a later lookup cannot observe a different state.
func (db *TokenDB) Resolve(ctx context.Context, address string, networkID string) (Token, bool) {
	db.EnsureLoaded(ctx)

	if common.IsNativeAddress(address) {
		return db.nativeToken(networkID), true
	}

	lowered := strings.ToLower(address)
	if scoped, found := db.byNetwork[networkID]; found {
		if token, found := scoped[lowered]; found {
			return token, true
		}
	}
	token, found := db.byAddress[lowered]
	return token, found
}

func (db *TokenDB) nativeToken(networkID string) Token {
	symbol, decimals := "ETH", int32(18)
	if id, err := strconv.ParseUint(networkID, 10, 64); err == nil {
		if n, err := networks.GetNetworkByID(id); err == nil {
			symbol = n.GetNativeTokenSymbol()
			decimals = int32(n.GetNativeTokenDecimal())
		}
	}
	return Token{Symbol: symbol, Decimals: decimals, ContractAddress: common.NativeAddress}
}

// ListNetworks returns the networks of the snapshot in payload order.
func (db *TokenDB) ListNetworks(ctx context.Context) []NetworkDescriptor {
	db.EnsureLoaded(ctx)
	return append([]NetworkDescriptor{}, db.networks...)
}

// TokensOn returns the tokens the snapshot knows on networkID, sorted by
// symbol.
func (db *TokenDB) TokensOn(ctx context.Context, networkID string) []Token {
	db.EnsureLoaded(ctx)
	scoped := db.byNetwork[networkID]
	res := make([]Token, 0, len(scoped))
	for _, t := range scoped {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Symbol == res[j].Symbol {
			return res[i].ContractAddress < res[j].ContractAddress
		}
		return res[i].Symbol < res[j].Symbol
	})
	return res
}
