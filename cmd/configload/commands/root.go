package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-config-load/internal/buildinfo"
	"github.com/MKhiriev/go-config-load/internal/logger"
	"github.com/MKhiriev/go-config-load/location"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	sys   location.System
	info  buildinfo.Info
	chain chainOptions

	logLevel string
}

// Execute runs the configload command line against the running process.
func Execute(info buildinfo.Info) error {
	return newRootCmd(location.OS, info).Execute()
}

func newRootCmd(sys location.System, info buildinfo.Info) *cobra.Command {
	a := &app{sys: sys, info: info}

	rootCmd := &cobra.Command{
		Use:   "configload",
		Short: "Resolve and inspect layered configuration files",
		Long: `configload resolves configuration files the way applications built on
go-config-load do: a per-user file named by an environment variable or found
under the home directory, then a project file given explicitly or found in
the working directory or one of its parents.`,
		Version:      info.Version(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.NewConsoleLogger("configload", a.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(log.WithContext(cmd.Context()))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVarP(&a.chain.configFile, "config", "c", "", "Explicit project config file; relative paths are resolved against the working directory")
	flags.StringVar(&a.chain.envVar, "env-var", "APP_ROOT_CONFIG", "Environment variable naming the user config file")
	flags.StringVar(&a.chain.homePath, "home-path", filepath.Join(".example_app", "AppConfig.toml"), "User config file relative to the home directory")
	flags.StringVar(&a.chain.name, "name", "AppConfig.toml", "Project config file searched in the working directory and its parents")
	flags.BoolVar(&a.chain.keepMissing, "keep-missing", false, "Keep a user config path even if the file does not exist")

	rootCmd.AddCommand(newPathsCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}
