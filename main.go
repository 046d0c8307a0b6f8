package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sivukhin/jmh-samples/samples"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

func NewRootCmd(registry *samples.Registry, config Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "jmh-samples",
		Short:         "Sample JMH benchmark results for report generation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newKeysCmd(registry), newShowCmd(registry, config), newValidateCmd(registry))
	return root
}

func newKeysCmd(registry *samples.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List dataset keys in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if registry.Len() == 0 {
				Logger.Infof("no predefined datasets configured")
			}
			for _, key := range registry.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}

func newShowCmd(registry *samples.Registry, config Config) *cobra.Command {
	format := config.Format
	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Print the benchmark results of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := registry.Lookup(args[0])
			if err != nil {
				return err
			}
			Logger.Debugf("dataset %v has %v results", args[0], len(results))
			return writeResults(cmd.OutOrStdout(), results, format, config.Indent)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", format, "output format: json or yaml")
	return cmd
}

func newValidateCmd(registry *samples.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [key...]",
		Short: "Check datasets for malformed benchmark data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = registry.Keys()
			}
			var err error
			for _, key := range args {
				results, lookupErr := registry.Lookup(key)
				if lookupErr != nil {
					err = multierr.Append(err, lookupErr)
					continue
				}
				if datasetErr := samples.ValidateDataset(results); datasetErr != nil {
					for _, violation := range multierr.Errors(datasetErr) {
						Logger.Errorf("dataset %v: %v", key, violation)
					}
					err = multierr.Append(err, fmt.Errorf("dataset %v is malformed", key))
					continue
				}
				Logger.Infof("dataset %v is valid (%v results)", key, len(results))
			}
			return err
		},
	}
}

func writeResults(w io.Writer, results []samples.BenchmarkResult, format string, indent int) error {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(results, "", strings.Repeat(" ", max(indent, 0)))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml", "yml":
		encoder := yaml.NewEncoder(w)
		if indent > 0 {
			encoder.SetIndent(indent)
		}
		if err := encoder.Encode(results); err != nil {
			return err
		}
		return encoder.Close()
	}
	return fmt.Errorf("unsupported output format '%v'", format)
}

func main() {
	if err := LoadEnvFile(".env"); err != nil {
		log.Fatalf("failed to load env: %v", err)
	}
	config := LoadConfig()
	if err := InitLogger(config.LogLevel, config.LogDevelopment); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer Logger.Sync()

	registry, err := config.Registry()
	if err != nil {
		Logger.Fatalf("failed to build sample registry: %v", err)
	}
	if err := NewRootCmd(registry, config).Execute(); err != nil {
		Logger.Errorf("%v", err)
		Logger.Sync()
		os.Exit(1)
	}
}
