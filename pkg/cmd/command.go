package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/openshift/restclient-go/pkg/logging"
	"github.com/openshift/restclient-go/pkg/metrics"
	"github.com/spf13/cobra"
	"k8s.io/component-base/cli/flag"
	"k8s.io/component-base/logs"
	"k8s.io/component-base/term"
	"k8s.io/component-base/version"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

// NewCommand creates the restclient command
func NewCommand() *cobra.Command {
	opts := NewOptions()

	cmd := &cobra.Command{
		Use:   CommandName,
		Short: "Materialize OpenShift and Kubernetes resources",
		Long: `restclient turns resource documents into typed resources the way the
client library does, and reports how each kind was resolved.

Kinds are resolved in order through:
  - the built-in type registry
  - the extension types of the API group serving the kind
  - the generic resource
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Handle version flag
			if opts.ShowVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.Get().GitVersion)
				return nil
			}
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	// Add flags
	flags := opts.Flags()
	for _, f := range flags.FlagSets {
		cmd.PersistentFlags().AddFlagSet(f)
	}

	cmd.AddCommand(
		newInspectCommand(opts),
		newStubCommand(opts),
		newKindsCommand(opts),
	)

	// Setup usage and help
	cols, _, _ := term.TerminalSize(cmd.OutOrStdout())
	cmd.SetUsageFunc(func(cmd *cobra.Command) error {
		fmt.Fprintf(cmd.OutOrStderr(), "Usage:\n  %s\n\n", cmd.UseLine())
		flag.PrintSections(cmd.OutOrStderr(), flags, cols)
		return nil
	})
	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\nUsage:\n  %s\n\n", cmd.Long, cmd.UseLine())
		if cmd.HasAvailableSubCommands() {
			fmt.Fprintf(cmd.OutOrStdout(), "Commands:\n")
			for _, sub := range cmd.Commands() {
				if sub.IsAvailableCommand() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s\n", sub.Name(), sub.Short)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		flag.PrintSections(cmd.OutOrStdout(), flags, cols)
	})

	return cmd
}

func newInspectCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [FILE|-]",
		Short: "Materialize a JSON or YAML resource document",
		Long: `Reads one resource document, builds the typed resource for it and prints it.
Without a file, or with "-", the document is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts, cmd.ErrOrStderr(), func(cfg *Config) error {
				raw, err := readInput(cmd.InOrStdin(), args)
				if err != nil {
					return err
				}
				// JSON is valid YAML, so both are accepted
				doc, err := yaml.YAMLToJSON(raw)
				if err != nil {
					return fmt.Errorf("failed to read document: %w", err)
				}
				res, err := cfg.Factory.Create(doc)
				if err != nil {
					return err
				}
				return printResource(cmd.OutOrStdout(), res, opts.Output)
			})
		},
	}
}

func newStubCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "stub KIND NAME",
		Short: "Build an empty resource in the version the server serves",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts, cmd.ErrOrStderr(), func(cfg *Config) error {
				res, err := cfg.Factory.Stub(args[0], args[1], opts.Namespace)
				if err != nil {
					return err
				}
				return printResource(cmd.OutOrStdout(), res, opts.Output)
			})
		},
	}
}

func newKindsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the kinds the factory has types for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts, cmd.ErrOrStderr(), func(cfg *Config) error {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
				fmt.Fprintf(w, "KIND\tGROUP\tSOURCE\n")
				reg := cfg.Factory.Registry()
				for _, kind := range reg.Kinds() {
					def, _ := reg.Definition(kind)
					group := def.Group
					if group == "" {
						group = "core"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", kind, group, metrics.ResolutionRegistry)
				}
				for _, key := range cfg.Factory.Extensions().Keys() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", key.Kind, key.Group, metrics.ResolutionExtension)
				}
				return w.Flush()
			})
		},
	}
}

// Run validates the options, builds the client and runs fn. With
// --metrics the metrics recorded by fn are written to errOut.
func Run(opts *Options, errOut io.Writer, fn func(*Config) error) error {
	// Validate options
	if errs := opts.Validate(); len(errs) > 0 {
		return errs[0]
	}

	defer logs.FlushLogs()

	klog.V(logging.LevelInfo).InfoS("Starting restclient",
		"version", version.Get().GitVersion,
		"offline", opts.Offline,
	)

	cfg, err := opts.Complete()
	if err != nil {
		return err
	}

	runErr := fn(cfg)
	if opts.ShowMetrics {
		if err := metrics.Dump(errOut, cfg.Metrics); err != nil {
			klog.ErrorS(err, "Failed to write metrics")
		}
	}
	return runErr
}

// readInput reads the document named by args, or stdin
func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}
