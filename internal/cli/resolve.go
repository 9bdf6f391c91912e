package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcreed/magpie/internal/atomicfile"
	"github.com/pcreed/magpie/internal/audit"
	"github.com/pcreed/magpie/internal/linker"
	"github.com/pcreed/magpie/internal/ui"
)

var resolveDryRun bool

type fileResolveReport struct {
	File      string `json:"file"`
	Rewritten int    `json:"rewritten"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [file...]",
	Short: "Rewrite alias-targeted wikilinks to canonical entity names",
	Long: `Rewrites wikilinks whose target is an entity alias so they point at
the canonical entity name, preserving what the reader sees. With no
arguments, every note in the vault is processed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()

		targets, err := resolveTargets(vaultPath, args)
		if err != nil {
			return handleError(ErrFileNotFound, err, "")
		}

		entities, err := loadEntities(vaultPath)
		if err != nil {
			return handleError(ErrDatabaseError, err, "run 'magpie scan' to rebuild the index")
		}

		session := newSessionID()
		auditLog := audit.New(vaultPath, !resolveDryRun)

		var reports []fileResolveReport
		total := 0

		for _, target := range targets {
			content, perm, err := readNote(target)
			if err != nil {
				return handleError(ErrFileReadError, err, "")
			}

			result := linker.ResolveAliases(content, entities)
			if result.Content == content {
				continue
			}

			rel := vaultRel(vaultPath, target)
			if !resolveDryRun {
				if err := atomicfile.WriteFile(target, []byte(result.Content), perm); err != nil {
					return handleError(ErrFileWriteError, err, "")
				}
				_ = auditLog.LogResolve(session, rel, result.LinksAdded)
			}

			total += result.LinksAdded
			reports = append(reports, fileResolveReport{File: rel, Rewritten: result.LinksAdded})
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"files":     reports,
				"rewritten": total,
				"dry_run":   resolveDryRun,
			}, &Meta{Count: len(reports)})
			return nil
		}

		if len(reports) == 0 {
			fmt.Println(ui.Info("no alias links to resolve"))
			return nil
		}
		for _, r := range reports {
			fmt.Printf("%s %s\n", ui.FilePath(r.File), ui.Count(r.Rewritten, "link", "links"))
		}
		verb := "resolved"
		if resolveDryRun {
			verb = "would resolve"
		}
		fmt.Println(ui.Successf("%s %d %s", verb, total, plural(total, "link", "links")))
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveDryRun, "dry-run", false, "Report rewrites without writing files")
	rootCmd.AddCommand(resolveCmd)
}
