package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pcreed/magpie/internal/atomicfile"
	"github.com/pcreed/magpie/internal/audit"
	"github.com/pcreed/magpie/internal/index"
	"github.com/pcreed/magpie/internal/linker"
	"github.com/pcreed/magpie/internal/slugs"
	"github.com/pcreed/magpie/internal/ui"
)

var (
	linkDryRun           bool
	linkAll              bool
	linkCaseSensitive    bool
	linkImplicit         bool
	linkImplicitPatterns []string
	linkExcludePatterns  []string
	linkMinLength        int
	linkAlreadyLinked    []string
)

// fileLinkReport is the per-file result in JSON output.
type fileLinkReport struct {
	File             string           `json:"file"`
	LinksAdded       int              `json:"links_added"`
	LinkedEntities   []string         `json:"linked_entities,omitempty"`
	ImplicitEntities []implicitReport `json:"implicit_entities,omitempty"`
}

var linkCmd = &cobra.Command{
	Use:   "link [file...]",
	Short: "Annotate notes with wikilinks to known entities",
	Long: `Rewrites notes so that mentions of known entities become wikilinks.
Code blocks, existing links, frontmatter, and other protected regions
are never touched. With no arguments, every note in the vault is
processed.`,
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
		if len(entities) == 0 {
			return handleErrorMsg(ErrNoEntities, "no entities found in vault",
				"add some notes, then run 'magpie scan'")
		}

		opts := extendedOptionsFromFlags(cmd)
		session := newSessionID()
		auditLog := audit.New(vaultPath, !linkDryRun)

		var reports []fileLinkReport
		totalLinks := 0
		linkedByFile := map[string][]string{}

		for _, target := range targets {
			content, perm, err := readNote(target)
			if err != nil {
				return handleError(ErrFileReadError, err, "")
			}

			opts.NotePath = target
			result, err := linker.Process(content, entities, opts)
			if err != nil {
				return handleError(ErrPatternInvalid, err, "check --exclude regular expressions")
			}

			rel := vaultRel(vaultPath, target)
			if result.Content != content && !linkDryRun {
				if err := atomicfile.WriteFile(target, []byte(result.Content), perm); err != nil {
					return handleError(ErrFileWriteError, err, "")
				}
				_ = auditLog.LogLink(session, rel, result.LinksAdded, result.LinkedEntities)
			}

			totalLinks += result.LinksAdded
			if len(result.LinkedEntities) > 0 {
				linkedByFile[rel] = result.LinkedEntities
			}
			if result.LinksAdded > 0 || len(result.ImplicitEntities) > 0 {
				reports = append(reports, fileLinkReport{
					File:             rel,
					LinksAdded:       result.LinksAdded,
					LinkedEntities:   result.LinkedEntities,
					ImplicitEntities: implicitReports(result.ImplicitEntities),
				})
			}
		}

		if !linkDryRun && totalLinks > 0 {
			recordLinkCounts(vaultPath, linkedByFile)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"files":       reports,
				"links_added": totalLinks,
				"dry_run":     linkDryRun,
			}, &Meta{Count: len(reports)})
			return nil
		}

		printLinkReports(reports, totalLinks)
		return nil
	},
}

func extendedOptionsFromFlags(cmd *cobra.Command) linker.ExtendedOptions {
	linkerCfg := getConfig().Linker

	allOccurrences := linkerCfg.AllOccurrences
	if cmd.Flags().Changed("all") {
		allOccurrences = linkAll
	}
	caseSensitive := linkerCfg.CaseSensitive
	if cmd.Flags().Changed("case-sensitive") {
		caseSensitive = linkCaseSensitive
	}
	detectImplicit := linkerCfg.DetectImplicit
	if cmd.Flags().Changed("implicit") {
		detectImplicit = linkImplicit
	}
	patterns := linkerCfg.ImplicitPatterns
	if cmd.Flags().Changed("implicit-patterns") {
		patterns = linkImplicitPatterns
	}
	excludes := linkerCfg.ExcludePatterns
	if cmd.Flags().Changed("exclude") {
		excludes = linkExcludePatterns
	}
	minLength := linkerCfg.MinEntityLength
	if cmd.Flags().Changed("min-length") {
		minLength = linkMinLength
	}

	return linker.ExtendedOptions{
		Options: linker.Options{
			FirstOccurrenceOnly: !allOccurrences,
			CaseInsensitive:     !caseSensitive,
			AlreadyLinked:       linkAlreadyLinked,
		},
		DetectImplicit:   detectImplicit,
		ImplicitPatterns: patterns,
		ExcludePatterns:  excludes,
		MinEntityLength:  minLength,
	}
}

// implicitReport describes a heuristic entity candidate, with a
// proposed note path for promoting it to a real entity.
type implicitReport struct {
	Text          string `json:"text"`
	Pattern       string `json:"pattern"`
	SuggestedPath string `json:"suggested_path"`
}

func implicitReports(matches []linker.ImplicitMatch) []implicitReport {
	if len(matches) == 0 {
		return nil
	}
	out := make([]implicitReport, 0, len(matches))
	for _, m := range matches {
		out = append(out, implicitReport{
			Text:          m.Text,
			Pattern:       m.Pattern,
			SuggestedPath: slugs.NotePath(m.Text),
		})
	}
	return out
}

// recordLinkCounts bumps index recency for linked entities. The index
// may be absent or locked; linking still succeeded, so failures here
// are ignored.
func recordLinkCounts(vaultPath string, linkedByFile map[string][]string) {
	db, err := index.Open(vaultPath)
	if err != nil {
		return
	}
	defer db.Close()
	now := time.Now()
	for _, names := range linkedByFile {
		_ = db.RecordLinks(names, now)
	}
}

func printLinkReports(reports []fileLinkReport, totalLinks int) {
	if len(reports) == 0 {
		fmt.Println(ui.Info("nothing to link"))
		return
	}
	for _, r := range reports {
		fmt.Printf("%s %s\n", ui.FilePath(r.File), ui.Count(r.LinksAdded, "link", "links"))
		for _, name := range r.LinkedEntities {
			fmt.Printf("  %s %s\n", ui.SymbolSuccess, ui.EntityName(name))
		}
		for _, imp := range r.ImplicitEntities {
			fmt.Printf("  %s %s %s\n", ui.SymbolInfo, imp.Text,
				ui.Hint(fmt.Sprintf("(%s, suggest %s)", imp.Pattern, imp.SuggestedPath)))
		}
	}
	verb := "added"
	if linkDryRun {
		verb = "would add"
	}
	fmt.Println(ui.Successf("%s %d %s", verb, totalLinks, plural(totalLinks, "link", "links")))
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

func init() {
	linkCmd.Flags().BoolVar(&linkDryRun, "dry-run", false, "Report links without writing files")
	linkCmd.Flags().BoolVar(&linkAll, "all", false, "Link every occurrence instead of only the first")
	linkCmd.Flags().BoolVar(&linkCaseSensitive, "case-sensitive", false, "Require exact-case matches")
	linkCmd.Flags().BoolVar(&linkImplicit, "implicit", false, "Detect and wrap implicit entity candidates")
	linkCmd.Flags().StringSliceVar(&linkImplicitPatterns, "implicit-patterns", nil, "Implicit pattern families to run (default all)")
	linkCmd.Flags().StringSliceVar(&linkExcludePatterns, "exclude", nil, "Regular expressions excluding implicit candidates")
	linkCmd.Flags().IntVar(&linkMinLength, "min-length", 0, "Minimum implicit candidate length")
	linkCmd.Flags().StringSliceVar(&linkAlreadyLinked, "already-linked", nil, "Entity names to treat as already linked")
	rootCmd.AddCommand(linkCmd)
}
