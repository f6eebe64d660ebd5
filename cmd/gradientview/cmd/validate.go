package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/gradientview/pkg/style"
)

func init() {
	RegisterCommand(newValidateCmd)
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <sheet>...",
		Short: "Check style sheets against the schema",
		Long: `Validate checks each sheet against the built-in schema and version
rule without rendering it. Every sheet is checked; the command fails if any
sheet is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			failed := 0
			for _, path := range args {
				if err := validateSheet(path); err != nil {
					failed++
					logger.Error("invalid", "sheet", path, "err", err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d sheets invalid", failed, len(args))
			}
			return nil
		},
	}
}

func validateSheet(path string) error {
	format, err := style.FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return style.Validate(data, format, path)
}
