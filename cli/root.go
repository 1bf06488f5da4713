// Package cli implements the portfolio terminal client: cobra commands
// driving a state controller over the HTTP API, with text renderers
// for the project grid, forms, and notices.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rjhade/project-portfolio/client"
	"github.com/rjhade/project-portfolio/config"
)

const (
	Version = "0.1.0"
	appName = "portfolio"
)

// defaultAPIURL is the local development address. Remote addresses are
// never compiled in; set --api or PORTFOLIO_API_URL instead.
const defaultAPIURL = "http://localhost:8080"

func Execute() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Manage portfolio projects",
		Long: `Portfolio is a terminal client for the project portfolio API.

It fetches the project list, filters it locally, and drives
create/update/delete through the REST endpoints.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (defaults to PORTFOLIO_API_URL or "+defaultAPIURL+")")

	newAPI := func() API {
		base := apiURL
		if base == "" {
			base = config.GetString(config.New(), "PORTFOLIO_API_URL", defaultAPIURL)
		}
		return client.New(base)
	}

	cmd.AddCommand(listCmd(newAPI))
	cmd.AddCommand(addCmd(newAPI))
	cmd.AddCommand(editCmd(newAPI))
	cmd.AddCommand(deleteCmd(newAPI))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}
