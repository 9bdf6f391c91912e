package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcreed/magpie/internal/linker"
	"github.com/pcreed/magpie/internal/ui"
)

var suggestPreview bool

// suggestion is one candidate link in JSON output.
type suggestion struct {
	Entity  string `json:"entity"`
	Matched string `json:"matched"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <file>",
	Short: "Show candidate links for a note without writing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()

		targets, err := resolveTargets(vaultPath, args)
		if err != nil {
			return handleError(ErrFileNotFound, err, "")
		}
		target := targets[0]

		entities, err := loadEntities(vaultPath)
		if err != nil {
			return handleError(ErrDatabaseError, err, "run 'magpie scan' to rebuild the index")
		}

		content, _, err := readNote(target)
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		opts := extendedOptionsFromFlags(cmd).Options
		candidates := linker.Suggest(content, entities, opts)

		suggestions := make([]suggestion, 0, len(candidates))
		for _, c := range candidates {
			suggestions = append(suggestions, suggestion{
				Entity:  c.EntityName,
				Matched: c.Match.Matched,
				Start:   c.Match.Start,
				End:     c.Match.End,
			})
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"file":        vaultRel(vaultPath, target),
				"suggestions": suggestions,
			}, &Meta{Count: len(suggestions)})
			return nil
		}

		if len(suggestions) == 0 {
			fmt.Println(ui.Info("no candidate links"))
			return nil
		}

		fmt.Println(ui.Header(vaultRel(vaultPath, target)))
		for _, s := range suggestions {
			fmt.Printf("  %s %s %s\n", ui.SymbolInfo, ui.EntityName(s.Entity),
				ui.Hint(fmt.Sprintf("matches %q at %d", s.Matched, s.Start)))
		}

		if suggestPreview {
			display := ui.NewDisplayContext()
			if display.IsTTY {
				result := linker.Apply(content, entities, opts)
				rendered, err := ui.RenderMarkdown(result.Content, display.TermWidth)
				if err == nil {
					fmt.Print(rendered)
				}
			}
		}
		return nil
	},
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestPreview, "preview", false, "Render the annotated note in the terminal")
	rootCmd.AddCommand(suggestCmd)
}
