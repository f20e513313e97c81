package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/rbin/internal/config"
)

// DefaultConfigPath is where "config init" writes when no path is given.
const DefaultConfigPath = "rbin.yaml"

// ConfigInitOptions holds flags for the config init command.
type ConfigInitOptions struct {
	*RootOptions
	Force bool
}

// ConfigInitResult reports the file that was written.
type ConfigInitResult struct {
	Path string `json:"path"`
}

func (r ConfigInitResult) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Wrote default configuration to %s\n", r.Path)
	return err
}

// NewConfigCommand creates the config command group.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage rbin.yaml",
	}
	cmd.AddCommand(newConfigInitCommand(rootOpts))
	return cmd
}

func newConfigInitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConfigInitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Long: `Write the built-in defaults as YAML to path, or to the --config path,
or to ./rbin.yaml. An existing file is kept unless --force is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.ConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = DefaultConfigPath
			}
			return runConfigInit(opts, path, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing file")
	return cmd
}

func runConfigInit(opts *ConfigInitOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if _, err := os.Stat(path); err == nil && !opts.Force {
		msg := fmt.Sprintf("config file exists: %s (use --force to overwrite)", path)
		if err := formatter.Error(ErrCodeWriteFailed, msg, nil); err != nil {
			return err
		}
		return NewExitError(ExitCommandError, msg)
	}

	if err := config.Default().Save(path); err != nil {
		return WrapExitError(ExitCommandError, "write config", err)
	}
	return formatter.Success(ConfigInitResult{Path: path})
}
