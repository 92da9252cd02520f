package tokendb

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// TokenEntry is a search result: a token together with the network the
// snapshot lists it on.
type TokenEntry struct {
	NetworkID   string
	NetworkName string
	Token       Token
}

type FuzzySource []TokenEntry

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", self[i].Token.Symbol, self[i].Token.ContractAddress)
}

func (db *TokenDB) newFuzzySource(ctx context.Context) FuzzySource {
	db.EnsureLoaded(ctx)
	result := FuzzySource{}
	for _, nd := range db.networks {
		for _, t := range db.TokensOn(ctx, nd.ID) {
			result = append(result, TokenEntry{
				NetworkID:   nd.ID,
				NetworkName: nd.Name,
				Token:       t,
			})
		}
	}
	return result
}

func getTokenMatches(input string, source FuzzySource) []TokenEntry {
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), source)
	result := []TokenEntry{}
	for i := 0; i < 10; i++ {
		if i < len(matches) {
			result = append(result, source[matches[i].Index])
		} else {
			break
		}
	}
	return result
}

// SearchTokens fuzzy-matches input against symbol and address across every
// network of the snapshot and returns the 10 best matches.
func (db *TokenDB) SearchTokens(ctx context.Context, input string) []TokenEntry {
	return getTokenMatches(input, db.newFuzzySource(ctx))
}

// SearchToken returns the best match for input.
func (db *TokenDB) SearchToken(ctx context.Context, input string) (TokenEntry, error) {
	matches := db.SearchTokens(ctx, input)
	if len(matches) == 0 {
		return TokenEntry{}, fmt.Errorf("no token is found with '%s'", input)
	}
	return matches[0], nil
}
