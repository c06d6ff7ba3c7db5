package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dball/tomlval/core"
	"github.com/dball/tomlval/printer"
	"github.com/dball/tomlval/reader"
	"github.com/dball/tomlval/runtime"
	"github.com/dball/tomlval/types"
)

var notations = map[string]types.Notation{
	"dec":       types.NotationDecimal,
	"hex":       types.NotationHexadecimal,
	"hex-lower": types.NotationHexadecimal,
	"oct":       types.NotationOctal,
	"bin":       types.NotationBinary,
}

// PRINT prints
func PRINT(value types.Value) string {
	return printer.PrintStr(printer.Config{}, value)
}

func describe(value types.Value) string {
	description := runtime.Describe(value)
	keys := make([]string, 0, len(description))
	for k := range description {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := []string{PRINT(value)}
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, description[k]))
	}
	return strings.Join(parts, " ")
}

func rep(env core.Env, s string) string {
	val, err := core.Eval(env, s)
	if err != nil {
		log.Debug().Err(err).Str("input", s).Msg("eval failed")
		return "#ERROR: " + err.Error()
	}
	return describe(val)
}

func interactiveRepl(env core.Env) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	historyFile := filepath.Join(os.TempDir(), ".tomlval-history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	for {
		text, err := line.Prompt("toml> ")
		if err == nil {
			line.AppendHistory(text)
			os.Stdout.WriteString(rep(env, text))
			os.Stdout.WriteString("\n")
		} else if err == liner.ErrPromptAborted {
		} else if err == io.EOF {
			break
		} else {
			log.Fatal().Err(err).Msg("liner")
		}
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
}

func readDocument(path string) (types.Document, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return types.Document{}, err
	}
	doc, err := reader.ReadDocument(string(b))
	if err != nil {
		return types.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("lines", doc.Len()).Msg("read document")
	return doc, nil
}

func newFmtCommand() *cobra.Command {
	var canonical bool
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Print a document, as read or canonically",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), printer.PrintDocument(printer.Config{Canonical: canonical}, doc))
			return nil
		},
	}
	cmd.Flags().BoolVar(&canonical, "canonical", false, "ignore source text and print canonical values")
	return cmd
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Print the value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			value, err := doc.Lookup(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describe(value))
			return nil
		},
	}
}

func newConvertCommand() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert LITERAL",
		Short: "Re-express an integer literal in another notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notation, found := notations[to]
			if !found {
				return fmt.Errorf("invalid notation %q", to)
			}
			value, err := reader.ReadStr(args[0])
			if err != nil {
				return err
			}
			converted, err := runtime.Convert(value, notation)
			if err != nil {
				return fmt.Errorf("convert %s to %s: %w", args[0], to, err)
			}
			if to == "hex-lower" {
				converted = converted.WithCase(types.CaseLower)
			}
			log.Debug().Str("from", args[0]).Str("to", converted.String()).Msg("converted")
			fmt.Fprintln(cmd.OutOrStdout(), PRINT(converted))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "dec", "target notation (dec|hex|hex-lower|oct|bin)")
	return cmd
}

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read literals interactively",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			interactiveRepl(core.BuildEnv())
		},
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           "tomlval",
		Short:         "Read and print notation-preserving toml values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			interactiveRepl(core.BuildEnv())
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.AddCommand(newFmtCommand())
	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newConvertCommand())
	cmd.AddCommand(newReplCommand())
	return cmd
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	})
	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("tomlval")
		os.Exit(1)
	}
}
