package cmd

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/networks"
	"github.com/routelens/routelens/ui"
)

var (
	networkConfig string
	networkForce  bool
)

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new network to the supported networks list locally",
	Long: `--config takes either a network config json filepath or a json string. The
json should be in the following format:
	{
		"name": "network_name",
		"alternative_names": ["alternative_name_1", "alternative_name_2"],
		"chain_id": 1,
		"native_token_symbol": "ETH",
		"native_token_decimal": 18
	}`,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()

		cfg := strings.TrimSpace(networkConfig)
		if cfg == "" {
			u.Error("no network config given, pass one with --config")
			os.Exit(1)
		}

		var content []byte
		if strings.HasPrefix(cfg, "{") && strings.HasSuffix(cfg, "}") {
			content = []byte(cfg)
		} else {
			// in this case, config is supposed to be a path to a json file
			b, err := os.ReadFile(cfg)
			if err != nil {
				u.Error("couldn't read the provided json file: %s", err)
				os.Exit(1)
			}
			content = b
		}

		newNetwork, err := networks.NewNetworkFromJSON(content)
		if err != nil {
			u.Error("the provided json is not a valid network config: %s", err)
			os.Exit(1)
		}

		allNames := append([]string{newNetwork.GetName()}, newNetwork.GetAlternativeNames()...)
		for _, name := range allNames {
			_, err := networks.GetNetwork(name)
			if err != nil && !errors.Is(err, networks.ErrNetworkNotFound) {
				u.Error("%s", err)
				os.Exit(1)
			}
			if err == nil && !networkForce {
				u.Error("network with name %s already exists. Use --force to replace it.", name)
				os.Exit(1)
			}
			if err == nil {
				u.Warn("network with name %s already exists and will be replaced", name)
			}
		}

		if err := networks.AddNetwork(newNetwork); err != nil {
			u.Error("failed to add the new network: %s", err)
			os.Exit(1)
		}
		u.Success("Network %s with chain ID %d added and saved to ~/.routelens/networks/.",
			newNetwork.GetName(), newNetwork.GetChainID())
	},
}

var listNetworksCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of the supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()

		rows := [][]string{}
		for _, n := range networks.GetSupportedNetworks() {
			rows = append(rows, []string{
				n.GetName(),
				strconv.FormatUint(n.GetChainID(), 10),
				n.GetNativeTokenSymbol(),
				strings.Join(n.GetAlternativeNames(), ", "),
			})
		}
		u.Table([]string{"Name", "Chain ID", "Native", "Aliases"}, rows)

		u.Info("")
		u.Info("To add a network:\n> routelens networks add --config network.json")
		u.Info("To remove one, delete the corresponding json file in ~/.routelens/networks/.")
	},
}

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "Manage the networks routelens knows about",
	Long:  ``,
}

func init() {
	addNetworkCmd.PersistentFlags().StringVarP(&networkConfig, "config", "c", "", "Path to the network config json file, or the json itself")
	addNetworkCmd.PersistentFlags().BoolVarP(&networkForce, "force", "f", false, "Force adding the network even if it already exists")

	networksCmd.AddCommand(listNetworksCmd)
	networksCmd.AddCommand(addNetworkCmd)
	rootCmd.AddCommand(networksCmd)
}
