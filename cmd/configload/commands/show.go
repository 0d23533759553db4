package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-config-load/builder"
	"github.com/MKhiriev/go-config-load/internal/logger"
	"github.com/MKhiriev/go-config-load/loader"
)

type showOptions struct {
	envPrefix string
	output    string
}

func newShowCmd(a *app) *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration",
		Long: `Load every resolved config file in order, overlay environment variables
with the given prefix (PREFIX_SECTION_KEY sets section.key) and print the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.output != "yaml" && opts.output != "json" {
				return fmt.Errorf("unsupported output format %q (expected yaml or json)", opts.output)
			}

			log := logger.FromContext(cmd.Context()).GetChildLogger(cmd.Name())
			k, err := loader.Load(a.newLoader(log), func(b *builder.Builder) (*koanf.Koanf, error) {
				if opts.envPrefix != "" {
					b.AddSource(builder.Environment(opts.envPrefix, "_"))
				}
				return b.Build()
			})
			if err != nil {
				return err
			}

			log.Debug().Strs("keys", k.Keys()).Msg("configuration merged")
			return writeConfig(cmd.OutOrStdout(), k.Raw(), opts.output)
		},
	}

	cmd.Flags().StringVar(&opts.envPrefix, "env-prefix", "APP", "Environment variable prefix to overlay; empty disables the overlay")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "yaml", "Output format (yaml or json)")

	return cmd
}

func writeConfig(w io.Writer, raw map[string]any, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(raw)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return err
	}
	return enc.Close()
}
