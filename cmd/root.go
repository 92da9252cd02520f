// Copyright © 2026 RouteLens Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/config"
	"github.com/routelens/routelens/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "routelens",
	Short: "Inspect Universal Router calldata before you sign it",
	Long: fmt.Sprintf(`RouteLens is a command line tool to inspect Uniswap Universal Router
calldata before you sign it. Give it the hex blob a dapp asked your wallet
to approve and it shows every command the router would execute, with
amounts, tokens and swap routes resolved into human readable form.

RouteLens supports you on different ends:

	1. It decodes the router's command plan: every swap, permit, sweep,
	wrap and nested sub-plan, across v2, v3 and v4 pools.

	2. It resolves token addresses against a token registry so amounts
	show up as "1.5 WETH" instead of raw wei next to a bare address.

	3. It renders defensively: anything it cannot interpret is shown in
	its raw form instead of being guessed at, and swap commands are
	always highlighted since they move your funds.

By default, RouteLens reads token metadata from:
	%s
You can point it at another registry with --registry-url or the following
env vars:
	1. ROUTELENS_REGISTRY_URL: the registry endpoint
	2. ROUTELENS_API_KEY: an API key, if the endpoint wants one
	3. ROUTELENS_NETWORK: the default network name

The registry is optional: without network access RouteLens still decodes
the full plan and shows unresolved addresses in truncated form.

For more information or support, open an issue at
https://github.com/routelens/routelens.`, config.DefaultRegistryURL),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "n", "",
		fmt.Sprintf("network the calldata targets. Valid values: %s.", strings.Join(networks.GetSupportedNetworkNames(), ", ")))
	rootCmd.PersistentFlags().BoolVar(&config.Debug, "debug", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&config.RegistryURL, "registry-url", "", "token registry endpoint")
	rootCmd.PersistentFlags().StringVar(&config.RegistryAPIKey, "api-key", "", "token registry API key")
	rootCmd.PersistentFlags().BoolVar(&config.JSONOutput, "json", false, "emit JSON instead of tables")

	cobra.OnInitialize(func() {
		config.Load()
		networks.SetNetwork(config.Network)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
