package main

import (
	"github.com/spf13/cobra"

	"github.com/TheMichaelB/textseal/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var examplePath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Config prints the configuration after defaults, config file,
TEXTSEAL_* environment variables and flags are applied.`,
		Example: `  textseal config
  TEXTSEAL_CRYPTO_SCHEME=pbkdf2 textseal config
  textseal config --example textseal.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if examplePath != "" {
				if err := config.SaveExample(examplePath); err != nil {
					return err
				}
				cmd.Printf("Wrote example config to %s\n", examplePath)
				return nil
			}
			return a.out.printJSON(a.cfg)
		},
	}

	cmd.Flags().StringVar(&examplePath, "example", "",
		"Write a default config file to this path instead")

	return cmd
}
