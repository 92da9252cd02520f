package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/config"
	"github.com/routelens/routelens/networks"
	"github.com/routelens/routelens/renderer"
	"github.com/routelens/routelens/tokendb"
	"github.com/routelens/routelens/ui"
)

var renderToken string

var renderCmd = &cobra.Command{
	Use:   "render [value]",
	Short: "Render a single decoded value through the formatter",
	Long: `Render takes one JSON value (an amount, an address, a path array, a swap
object...) and formats it exactly the way decode would inside a command
table. Values can be passed as an argument, via @path, or via - for stdin.
Input that is not valid JSON is treated as a plain string.

Use --token to give amounts a currency, the way a sibling token parameter
would inside a real command.

Examples:
	routelens render '"1000000000000000000"' --token 0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2
	routelens render '["0xc02a...", "0xa0b8..."]'
	routelens render @swap.json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()

		value, err := readValueArg(args)
		if err != nil {
			u.Error("%s", err)
			os.Exit(1)
		}

		ctx := cmd.Context()
		db := tokendb.NewTokenDB(config.RegistryURL, config.RegistryAPIKey)
		if config.JSONOutput {
			db.EnsureLoaded(ctx)
		} else {
			stop := u.Spinner(fmt.Sprintf("Loading token registry from %s", config.RegistryURL))
			db.EnsureLoaded(ctx)
			stop()
		}

		scope := renderer.Scope{
			NetworkID:          networks.RegistryID(networks.CurrentNetwork()),
			ContextualCurrency: renderToken,
		}
		rendering := renderer.NewRenderer(db).Format(ctx, value, scope)

		if config.JSONOutput {
			out, err := json.MarshalIndent(struct {
				Display string          `json:"display"`
				Raw     json.RawMessage `json:"raw"`
			}{rendering.Display, json.RawMessage(rendering.Raw)}, "", "  ")
			if err != nil {
				u.Error("couldn't marshal the rendering: %s", err)
				os.Exit(1)
			}
			fmt.Println(string(out))
			return
		}

		for _, line := range strings.Split(rendering.Display, "\n") {
			u.Info("%s", u.Style(ui.StyledText{Text: line, Severity: rendering.Severity}))
		}
	},
}

// readValueArg parses the value argument as JSON with number fidelity
// preserved. A missing argument or - reads stdin, @path reads a file, and
// anything that fails to parse as JSON is kept as a plain string.
func readValueArg(args []string) (any, error) {
	s := "-"
	if len(args) == 1 {
		s = strings.TrimSpace(args[0])
	}
	switch {
	case s == "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("couldn't read the value from stdin: %w", err)
		}
		s = strings.TrimSpace(string(b))
	case strings.HasPrefix(s, "@"):
		b, err := os.ReadFile(s[1:])
		if err != nil {
			return nil, fmt.Errorf("couldn't read the value file: %w", err)
		}
		s = strings.TrimSpace(string(b))
	}

	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return s, nil
	}
	return value, nil
}

func init() {
	renderCmd.PersistentFlags().StringVarP(&renderToken, "token", "t", "", "token address amounts are denominated in")
	rootCmd.AddCommand(renderCmd)
}
