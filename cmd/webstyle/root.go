package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/benoitkugler/webstyle/config"
	pr "github.com/benoitkugler/webstyle/css/properties"
	"github.com/benoitkugler/webstyle/html/tree"
	"github.com/benoitkugler/webstyle/logger"
	"github.com/benoitkugler/webstyle/version"
)

type rootFlags struct {
	configPath string
	medium     string
	parallel   bool
}

// loadConfig reads the configuration file, if any, and
// applies the flags overrides.
func (flags *rootFlags) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("medium") {
		cfg.Medium = flags.medium
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = flags.parallel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.Set(cfg.Logger())
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "webstyle",
		Short:         "webstyle computes the CSS properties of HTML elements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVarP(&flags.medium, "medium", "m", "screen", "Output medium: screen, print or all")
	cmd.PersistentFlags().BoolVar(&flags.parallel, "parallel", false, "Resolve sibling subtrees concurrently")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newPropsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.VersionString)
			return err
		},
	}
}

func newResolveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve FILE.html",
		Short: "Print the computed properties of each element, as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			opts, err := cfg.ResolverOptions()
			if err != nil {
				return err
			}
			return runResolve(cmd.OutOrStdout(), args[0], opts)
		},
	}
}

// elementStyle is the YAML output for one element
type elementStyle struct {
	Element    string            `yaml:"element"`
	Properties map[string]string `yaml:"properties"`
}

func runResolve(out io.Writer, path string, opts tree.Options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	root, err := tree.ParseHTML(f)
	if err != nil {
		return err
	}

	// recovered errors are already logged as warnings
	styles, _ := tree.NewResolver(opts).Resolve(root)

	var output []elementStyle
	for _, node := range root.Iter() {
		output = append(output, elementStyle{Element: node.Path(), Properties: styles.Get(node).Map()})
	}
	return writeYAML(out, output)
}

// propertyInfo is the YAML output for one property of the registry
type propertyInfo struct {
	Name      string `yaml:"name"`
	Initial   string `yaml:"initial"`
	Inherited bool   `yaml:"inherited"`
}

func newPropsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "props",
		Short: "List the properties applying to the medium",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			medium, err := cfg.MediumType()
			if err != nil {
				return err
			}
			var output []propertyInfo
			for _, prop := range pr.ApplicableProps(medium) {
				output = append(output, propertyInfo{
					Name:      prop.String(),
					Initial:   pr.InitialValue(prop).String(),
					Inherited: pr.IsInherited(prop),
				})
			}
			return writeYAML(cmd.OutOrStdout(), output)
		},
	}
}

func writeYAML(out io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
