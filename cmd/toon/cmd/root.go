// Package cmd implements the toon CLI's subcommands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/toon/log"
	"go.jacobcolvin.com/toon/profile"
	"go.jacobcolvin.com/toon/version"
)

// NewRootCommand builds the toon root command with its encode, decode,
// convert, and version subcommands attached.
func NewRootCommand() *cobra.Command {
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	var (
		prof *profile.Profiler
		pub  *log.Publisher
	)

	rootCmd := &cobra.Command{
		Use:   "toon",
		Short: "Encode, decode, and convert TOON documents",
		Long: `toon reads and writes TOON (Token-Optimized Object Notation), a compact
indentation-based format designed to reduce token usage when sending
structured data to language models.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			pub = log.NewPublisher()

			handler, err := logCfg.NewHandler(pub)
			if err != nil {
				return fmt.Errorf("configuring logger: %w", err)
			}

			slog.SetDefault(slog.New(handler))

			sub := pub.Subscribe()
			go func() {
				for entry := range sub.C() {
					os.Stderr.Write(entry)
				}
			}()

			prof = profCfg.NewProfiler()

			return prof.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			pub.Close()

			return prof.Stop()
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	completionErr = profCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(
		newEncodeCommand(),
		newDecodeCommand(),
		newConvertCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ver := version.Version
			if ver == "" {
				ver = "unknown"
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "toon %s (%s, %s/%s, %s)\n",
				ver, version.Revision, version.GoOS, version.GoArch, version.GoVersion)

			return err
		},
	}
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" || arg == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}

		return data, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadInput, arg, err)
	}

	return data, nil
}

func writeOutput(output string, data []byte) error {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	if output == "" || output == "-" {
		_, err := os.Stdout.Write(data)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return nil
	}

	err := os.WriteFile(output, data, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
