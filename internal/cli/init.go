package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcreed/magpie/internal/config"
	"github.com/pcreed/magpie/internal/ui"
	"github.com/pcreed/magpie/internal/vault"
)

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Initialize a new vault",
	Long: `Creates a new vault at the specified path.

Creates:
  - .magpie/     (index and audit log directory)
  - .gitignore   (ignores derived files)

Also creates the global config file if one does not exist yet.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create vault directory: %w", err)
		}

		dataDir := filepath.Join(path, vault.DataDir)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", vault.DataDir, err)
		}

		if err := ensureGitignore(path); err != nil {
			return err
		}

		configFile, err := config.CreateDefault()
		if err != nil {
			return fmt.Errorf("failed to create config: %w", err)
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{
				"vault":  path,
				"config": configFile,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("initialized vault at %s", ui.FilePath(path)))
		fmt.Println(ui.Hint(fmt.Sprintf("config: %s", configFile)))
		fmt.Println(ui.Hint("add the vault to [vaults] in the config, then run 'magpie scan'"))
		return nil
	},
}

// ensureGitignore adds the data dir to the vault's .gitignore,
// creating the file when missing.
func ensureGitignore(vaultPath string) error {
	gitignorePath := filepath.Join(vaultPath, ".gitignore")
	entry := vault.DataDir + "/"

	existing := ""
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = string(data)
	}
	if strings.Contains(existing, entry) {
		return nil
	}

	content := "# Magpie index and audit log (rebuilt with 'magpie scan')\n" + entry + "\n"
	if existing != "" {
		content = strings.TrimRight(existing, "\n") + "\n\n" + content
	}
	if err := os.WriteFile(gitignorePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
