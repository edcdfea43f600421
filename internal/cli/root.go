// Package cli assembles the command tree for the graphql-blog binary.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Config  string
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "graphql-blog",
		Short: "In-memory GraphQL blog server",
		Long: `graphql-blog serves an in-memory blog of users, posts and comments
over a GraphQL endpoint, with websocket subscriptions for newly published
posts and comments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Optional environment file; absence is not an error.
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "path to YAML config file")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}
