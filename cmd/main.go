package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samaelod/enigma/config"
	"github.com/samaelod/enigma/engine"
	"github.com/samaelod/enigma/loader"
	"github.com/samaelod/enigma/tui"
	"github.com/samaelod/enigma/types"
)

var version = "dev"

type flags struct {
	debug    bool
	secret   bool
	instruct bool
	fast     bool

	machinePath string
	configPath  string
	outputPath  string
}

func (f *flags) options() types.Options {
	return types.Options{
		Debug:            f.debug,
		Secret:           f.secret,
		ShowInstructions: f.instruct,
		Animate:          !f.fast,
	}
}

func (f *flags) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.Load(f.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f.outputPath != "" {
		cfg.OutputPath = f.outputPath
	}
	return cfg, nil
}

// loadMachine reads the wiring document named by --machine, or the one in
// the config when it exists. A nil machine means the operator picks one.
func (f *flags) loadMachine(cmd *cobra.Command, cfg *config.Config) (*types.Machine, error) {
	path := f.machinePath
	if !cmd.Flags().Changed("machine") {
		path = cfg.MachinePath
		if _, err := os.Stat(path); err != nil {
			return nil, nil
		}
	}

	sheet, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load machine: %w", err)
	}
	return sheet, nil
}

func newRootCommand() *cobra.Command {
	var f flags

	rootCommand := &cobra.Command{
		Use:   "enigma",
		Short: "Rotor cipher machine simulator",
		Long: `Enigma simulates a rotor cipher machine in the terminal.
Plug up to ten letter pairs into the plugboard, then type: every key steps
the rotors and lights the lamp of the enciphered letter. Enter writes the
message to the output file in five letter blocks.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig()
			if err != nil {
				return err
			}
			sheet, err := f.loadMachine(cmd, cfg)
			if err != nil {
				return err
			}
			return tui.Run(version, f.options(), cfg, sheet)
		},
	}

	rootCommand.PersistentFlags().
		StringVarP(&f.machinePath, "machine", "m", "", "wiring document (.yaml, .toml, .json or .lua)")

	rootCommand.PersistentFlags().
		StringVarP(&f.configPath, "config", "c", "", "application config file")

	rootCommand.PersistentFlags().
		StringVarP(&f.outputPath, "output", "o", "", "file committed messages are written to")

	rootCommand.Flags().BoolVarP(&f.debug, "debug", "d", false, "show the signal trace instead of the machine")
	rootCommand.Flags().BoolVarP(&f.secret, "secret", "s", false, "hide the message while typing")
	rootCommand.Flags().BoolVarP(&f.instruct, "instruct", "i", false, "show operating instructions")
	rootCommand.Flags().BoolVarP(&f.fast, "fast", "f", false, "skip rotor animation")

	rootCommand.AddCommand(newEncipherCommand(&f))

	return rootCommand
}

func newEncipherCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "encipher",
		Short: "Encipher standard input without the interface",
		Long: `Encipher reads text from standard input and runs every letter through the
machine with the document's positions and plugs. Other characters are
skipped. The result is printed in five letter blocks.

Example:
  echo "HELLO WORLD" | enigma encipher -m machine.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig()
			if err != nil {
				return err
			}

			path := f.machinePath
			if path == "" {
				path = cfg.MachinePath
			}
			sheet, err := loader.Load(path)
			if err != nil {
				return fmt.Errorf("load machine: %w", err)
			}

			text, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			out, err := encipher(sheet, string(text))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, " \n"))
			return err
		},
	}
}

// encipher runs text through a fresh machine built from sheet and returns
// the formatted result.
func encipher(sheet *types.Machine, text string) (string, error) {
	m, err := engine.Build(sheet)
	if err != nil {
		return "", fmt.Errorf("build machine: %w", err)
	}

	// keep the document's plugs and start typing
	if m.Mode() == engine.ModeWiring {
		if err := m.Handle(engine.EnterKey); err != nil {
			return "", err
		}
	}

	for _, r := range strings.ToUpper(text) {
		if types.Index(r) < 0 {
			continue
		}
		if err := m.Handle(engine.RuneKey(r)); err != nil {
			return "", err
		}
	}
	return engine.FormatBlocks(m.Message()), nil
}

func main() {
	// Only create debug log in dev builds
	if version == "dev" {
		f, err := os.OpenFile("debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err == nil {
			log.SetOutput(f)
		}
	}

	if err := newRootCommand().Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
