package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcreed/magpie/internal/audit"
	"github.com/pcreed/magpie/internal/index"
	"github.com/pcreed/magpie/internal/ui"
	"github.com/pcreed/magpie/internal/vault"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Rebuild the entity index from the vault",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()

		entities, err := vault.ScanEntities(vaultPath)
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		db, recreated, err := index.OpenWithRebuild(vaultPath)
		if err != nil {
			if errors.Is(err, index.ErrIndexLocked) {
				return handleError(ErrIndexLocked, err, "another magpie process is rebuilding the index")
			}
			return handleError(ErrDatabaseError, err, "")
		}
		defer db.Close()

		if err := db.Rebuild(entities); err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		auditLog := audit.New(vaultPath, true)
		_ = auditLog.LogScan(newSessionID(), len(entities))

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"entities":  len(entities),
				"recreated": recreated,
			}, &Meta{Count: len(entities)})
			return nil
		}

		if recreated {
			fmt.Println(ui.Warning("index schema changed, database recreated"))
		}
		fmt.Println(ui.Successf("indexed %d %s", len(entities), plural(len(entities), "entity", "entities")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
