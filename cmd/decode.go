package cmd

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/config"
	"github.com/routelens/routelens/decoder"
	"github.com/routelens/routelens/networks"
	"github.com/routelens/routelens/renderer"
	"github.com/routelens/routelens/tokendb"
	"github.com/routelens/routelens/ui"
	"github.com/routelens/routelens/util"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [calldata]",
	Short: "Decode Universal Router calldata into its command plan",
	Long: `Decode takes the hex calldata of a Universal Router execute call and shows
every command it would run. Calldata can be passed directly as an argument,
via @path to read it from a file, or via - to read it from stdin.

Examples:
	routelens decode 0x3593564c000...
	routelens decode @calldata.txt
	pbpaste | routelens decode -
	routelens decode --json @calldata.txt | jq .commands`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()

		data, err := readHexArg(args[0])
		if err != nil {
			u.Error("%s", err)
			os.Exit(1)
		}

		call, err := decoder.DecodeCall(data)
		if err != nil {
			u.Error("couldn't decode the calldata: %s", err)
			if errors.Is(err, decoder.ErrNotRouterCall) {
				u.Info("routelens only understands execute(bytes,bytes[]) and execute(bytes,bytes[],uint256) calls")
			}
			os.Exit(1)
		}

		ctx := cmd.Context()
		network := networks.CurrentNetwork()
		db := tokendb.NewTokenDB(config.RegistryURL, config.RegistryAPIKey)

		if config.JSONOutput {
			db.EnsureLoaded(ctx)
		} else {
			stop := u.Spinner(fmt.Sprintf("Loading token registry from %s", config.RegistryURL))
			db.EnsureLoaded(ctx)
			stop()
		}

		display := util.BuildCallDisplay(ctx, call, renderer.NewRenderer(db), network)

		if config.JSONOutput {
			out, err := json.MarshalIndent(display, "", "  ")
			if err != nil {
				u.Error("couldn't marshal the decoded plan: %s", err)
				os.Exit(1)
			}
			fmt.Println(string(out))
			return
		}
		util.PrintCallDisplay(u, display)
	},
}

// readHexArg interprets arg as raw hex (0x prefix optional), as @path to a
// file holding the hex, or as - for stdin.
func readHexArg(arg string) ([]byte, error) {
	s := strings.TrimSpace(arg)
	switch {
	case s == "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("couldn't read calldata from stdin: %w", err)
		}
		s = strings.TrimSpace(string(b))
	case strings.HasPrefix(s, "@"):
		b, err := os.ReadFile(s[1:])
		if err != nil {
			return nil, fmt.Errorf("couldn't read calldata file: %w", err)
		}
		s = strings.TrimSpace(string(b))
	}

	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("calldata is not valid hex: %w", err)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
