package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/routelens/routelens/common"
	"github.com/routelens/routelens/config"
	"github.com/routelens/routelens/networks"
	"github.com/routelens/routelens/tokendb"
	"github.com/routelens/routelens/ui"
)

var listAllTokens bool

var listTokensCmd = &cobra.Command{
	Use:   "list [network]",
	Short: "Show the networks of the token registry, or the tokens on one network",
	Long: `Without an argument, list shows every network the registry knows about and
how many tokens it carries there. With a network name it lists the tokens
themselves; --all lists the whole snapshot, one table group per network.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		ctx := cmd.Context()
		db := loadTokenDB(cmd, u)

		if len(args) == 1 {
			network, err := networks.GetNetwork(args[0])
			if err != nil {
				u.Error("%s", err)
				os.Exit(1)
			}
			tokens := db.TokensOn(ctx, networks.RegistryID(network))
			if len(tokens) == 0 {
				u.Warn("the registry has no tokens for %s", network.GetName())
				return
			}
			rows := [][]string{}
			for _, t := range tokens {
				rows = append(rows, []string{t.Symbol, t.ContractAddress, strconv.Itoa(int(t.Decimals))})
			}
			u.Table([]string{"Symbol", "Address", "Decimals"}, rows)
			return
		}

		descriptors := db.ListNetworks(ctx)
		if len(descriptors) == 0 {
			u.Warn("the registry at %s returned no networks", config.RegistryURL)
			return
		}

		if listAllTokens {
			groups := [][][]string{}
			for _, d := range descriptors {
				group := [][]string{}
				for _, t := range db.TokensOn(ctx, d.ID) {
					group = append(group, []string{t.Symbol, t.ContractAddress, strconv.Itoa(int(t.Decimals)), d.Name})
				}
				if len(group) > 0 {
					groups = append(groups, group)
				}
			}
			u.TableWithGroups([]string{"Symbol", "Address", "Decimals", "Network"}, groups)
			return
		}

		p := message.NewPrinter(language.English)
		rows := [][]string{}
		for _, d := range descriptors {
			rows = append(rows, []string{d.ID, d.Name, p.Sprintf("%d", d.TokenCount)})
		}
		u.Table([]string{"ID", "Network", "Tokens"}, rows)
	},
}

var searchTokensCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Fuzzy-search the registry by symbol or address",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		db := loadTokenDB(cmd, u)

		matches := db.SearchTokens(cmd.Context(), args[0])
		if len(matches) == 0 {
			u.Warn("no token matches '%s'", args[0])
			return
		}
		rows := [][]string{}
		for _, m := range matches {
			rows = append(rows, []string{m.Token.Symbol, m.Token.ContractAddress, m.NetworkName})
		}
		u.Table([]string{"Symbol", "Address", "Network"}, rows)
	},
}

var resolveTokenCmd = &cobra.Command{
	Use:   "resolve [address]",
	Short: "Look one address up on the current network",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		if !common.IsAddress(args[0]) {
			u.Error("'%s' is not an address", args[0])
			os.Exit(1)
		}

		db := loadTokenDB(cmd, u)
		network := networks.CurrentNetwork()
		token, found := db.Resolve(cmd.Context(), args[0], networks.RegistryID(network))
		if !found {
			u.Warn("the registry has no token at %s on %s", args[0], network.GetName())
			return
		}

		rows := [][2]string{
			{"Symbol", token.Symbol},
			{"Decimals", strconv.Itoa(int(token.Decimals))},
			{"Address", token.ContractAddress},
			{"Network", network.GetName()},
		}
		if token.USDPrice > 0 {
			rows = append(rows, [2]string{"USD Price", strconv.FormatFloat(token.USDPrice, 'f', -1, 64)})
		}
		if token.LogoURI != "" {
			rows = append(rows, [2]string{"Logo", token.LogoURI})
		}
		u.KeyValue(rows)
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Explore the token registry routelens resolves against",
	Long:  ``,
}

// loadTokenDB builds the registry client from the effective config and loads
// the snapshot behind a spinner.
func loadTokenDB(cmd *cobra.Command, u ui.UI) *tokendb.TokenDB {
	db := tokendb.NewTokenDB(config.RegistryURL, config.RegistryAPIKey)
	stop := u.Spinner(fmt.Sprintf("Loading token registry from %s", config.RegistryURL))
	db.EnsureLoaded(cmd.Context())
	stop()
	return db
}

func init() {
	listTokensCmd.PersistentFlags().BoolVar(&listAllTokens, "all", false, "List every token of every network")
	tokensCmd.AddCommand(listTokensCmd)
	tokensCmd.AddCommand(searchTokensCmd)
	tokensCmd.AddCommand(resolveTokenCmd)
	rootCmd.AddCommand(tokensCmd)
}
