package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/SyzBeats/GraphQL-Blog/internal/store"
)

// NewSeedCommand creates the seed command, which validates a seed file and
// prints a summary without starting a server.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "seed [file]",
		Short: "Validate and inspect a seed file",
		Long: `Validate a YAML seed file and print what it contains.

With no argument, inspects the embedded default seed.

Example:
  graphql-blog seed
  graphql-blog seed ./fixtures/blog.yaml --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				seed store.Seed
				err  error
			)
			if len(args) == 1 {
				seed, err = store.LoadSeedFile(args[0])
				if err != nil {
					return err
				}
			} else {
				seed = store.DefaultSeed()
			}

			if asJSON {
				out, err := json.MarshalIndent(seed, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
				return nil
			}

			cmd.Printf("users:    %d\n", len(seed.Users))
			cmd.Printf("posts:    %d\n", len(seed.Posts))
			cmd.Printf("comments: %d\n", len(seed.Comments))
			published := 0
			for _, p := range seed.Posts {
				if p.Published {
					published++
				}
			}
			cmd.Printf("published posts: %d\n", published)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full seed as JSON")

	return cmd
}
