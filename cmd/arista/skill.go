// ABOUTME: Install assistant skill for arista
// ABOUTME: Embeds and installs the skill definition to ~/.claude/skills/

package main

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install assistant skill",
	Long: `Install the arista skill for Claude Code.

This copies the skill definition to ~/.claude/skills/arista/
so the assistant can use arista commands contextually.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		return installSkill(skillDirFor(home), os.Stdin, skillSkipConfirm)
	},
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}

func skillDirFor(home string) string {
	return filepath.Join(home, ".claude", "skills", "arista")
}

// installSkill writes the embedded SKILL.md into skillDir, asking on in
// unless skipConfirm is set.
func installSkill(skillDir string, in io.Reader, skipConfirm bool) error {
	skillPath := filepath.Join(skillDir, "SKILL.md")

	fmt.Println("┌─────────────────────────────────────────────────────────────┐")
	fmt.Println("│                    Arista Skill                             │")
	fmt.Println("└─────────────────────────────────────────────────────────────┘")
	fmt.Println()
	fmt.Println("This will install the arista skill, enabling your assistant to:")
	fmt.Println()
	fmt.Println("  • Log exercise sessions and sleep")
	fmt.Println("  • Review recent activity and totals")
	fmt.Println("  • Manage the user profile")
	fmt.Println()
	fmt.Println("Destination:")
	fmt.Printf("  %s\n", skillPath)
	fmt.Println()

	if _, err := os.Stat(skillPath); err == nil {
		fmt.Println("Note: A skill file already exists and will be overwritten.")
		fmt.Println()
	}

	if !skipConfirm {
		fmt.Print("Install the arista skill? [y/N] ")
		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Installation canceled.")
			return nil
		}
		fmt.Println()
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}

	if err := os.MkdirAll(skillDir, 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}

	if err := os.WriteFile(skillPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	color.Green("✓ Installed arista skill successfully!")
	return nil
}
