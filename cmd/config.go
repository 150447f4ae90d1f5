// Package cmd implements the command-line interface for cursormon.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/cursormon/internal/focus"
)

// PolicyEnv overrides the focus policy when --policy is not given
const PolicyEnv = "CURSORMON_POLICY"

// Config holds all application configuration
type Config struct {
	Verbose     bool
	ShowLogs    bool
	Policy      focus.Policy
	NoTray      bool
	VisibleOnly bool
	Elevate     bool
}

// NewConfigFromFlags creates a Config from parsed command flags
func NewConfigFromFlags(cmd *cobra.Command) (*Config, error) {
	policy, err := resolvePolicy(cmd)
	if err != nil {
		return nil, err
	}

	return &Config{
		Verbose:     getBoolFlag(cmd, "verbose"),
		ShowLogs:    getBoolFlag(cmd, "logs"),
		Policy:      policy,
		NoTray:      getBoolFlag(cmd, "no-tray"),
		VisibleOnly: getBoolFlag(cmd, "visible-only"),
		Elevate:     getBoolFlag(cmd, "elevate"),
	}, nil
}

// resolvePolicy prefers an explicit --policy, then $CURSORMON_POLICY, then
// the default
func resolvePolicy(cmd *cobra.Command) (focus.Policy, error) {
	name := getStringFlag(cmd, "policy")
	source := "--policy"

	if !flagChanged(cmd, "policy") {
		if env := os.Getenv(PolicyEnv); env != "" {
			name, source = env, PolicyEnv
		}
	}

	if name == "" {
		return focus.DefaultPolicy, nil
	}

	policy, err := focus.ParsePolicy(name)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", source, err)
	}

	return policy, nil
}

// getBoolFlag retrieves a boolean flag, checking both local and persistent flags
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		// Try persistent flags if not found in local flags
		val, _ = cmd.PersistentFlags().GetBool(name)
	}

	return val
}

// getStringFlag retrieves a string flag, checking both local and persistent flags
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		val, _ = cmd.PersistentFlags().GetString(name)
	}

	return val
}

func flagChanged(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
}
