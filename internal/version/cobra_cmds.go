package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand adds a 'version' subcommand, which prints the build's
// version information.
//
// When adding this as a subcommand to another CLI, use:
//
//	cmd.AddCommand(version.NewVersionCommand())
func NewVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print sysprobe's version",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := Get()

			if asJSON {
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Println(info.Short())
			fmt.Printf("  go:       %s\n", info.GoVersion)
			fmt.Printf("  platform: %s\n", info.Platform)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")

	return cmd
}
