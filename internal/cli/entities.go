package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcreed/magpie/internal/ui"
)

type entityListing struct {
	Name    string   `json:"name"`
	Path    string   `json:"path,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
}

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "List linkable entities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entities, err := loadEntities(getVaultPath())
		if err != nil {
			return handleError(ErrDatabaseError, err, "run 'magpie scan' to rebuild the index")
		}

		listings := make([]entityListing, 0, len(entities))
		for _, e := range entities {
			listings = append(listings, entityListing{
				Name:    e.Name(),
				Path:    e.Path(),
				Aliases: e.Aliases(),
			})
		}

		if isJSONOutput() {
			outputSuccess(listings, &Meta{Count: len(listings)})
			return nil
		}

		if len(listings) == 0 {
			fmt.Println(ui.Info("no entities found; run 'magpie scan'"))
			return nil
		}
		for _, l := range listings {
			line := ui.EntityName(l.Name)
			if len(l.Aliases) > 0 {
				line += " " + ui.Hint("("+strings.Join(l.Aliases, ", ")+")")
			}
			if l.Path != "" {
				line += " " + ui.Muted.Render(l.Path)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(entitiesCmd)
}
