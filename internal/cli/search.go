package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcreed/magpie/internal/index"
	"github.com/pcreed/magpie/internal/ui"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over entity names and aliases",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		db, err := index.Open(getVaultPath())
		if err != nil {
			return handleError(ErrDatabaseError, err, "run 'magpie scan' to build the index")
		}
		defer db.Close()

		results, err := db.Search(query, searchLimit)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(results, &Meta{Count: len(results)})
			return nil
		}

		if len(results) == 0 {
			fmt.Println(ui.Info("no matches"))
			return nil
		}
		for _, r := range results {
			line := ui.EntityName(r.Name)
			if len(r.Aliases) > 0 {
				line += " " + ui.Hint("("+strings.Join(r.Aliases, ", ")+")")
			}
			if r.Path != "" {
				line += " " + ui.Muted.Render(r.Path)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)
}
