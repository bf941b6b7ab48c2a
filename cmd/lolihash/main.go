package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"edu/lolihash/internal/hashes"
	"edu/lolihash/internal/input"
	"edu/lolihash/internal/logging"
)

const allAlgorithms = "all"

var errMismatch = errors.New("digest mismatch")

type app struct {
	v      *viper.Viper
	log    zerolog.Logger
	stdin  io.Reader
	stderr io.Writer

	config string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop(), stdin: stdin, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "lolihash",
		Short: "lolihash - SHA3-512, Whirlpool and RIPEMD-160 digests as hex",
		Long: `lolihash prints lowercase hex digests of text using SHA3-512,
Whirlpool or RIPEMD-160, and checks text against existing digests.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.config, "config", "", "Config file path")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("log-format", logging.FormatPlain, "Log format (plain, json)")
	pf.StringP("encoding", "e", "utf-8", "Charset of the input text (e.g. latin1, windows-1252)")
	for _, k := range []string{"log-level", "log-format", "encoding"} {
		_ = a.v.BindPFlag(k, pf.Lookup(k))
	}

	a.v.SetEnvPrefix("LOLIHASH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	a.v.SetDefault("algorithm", "sha3-512")

	rootCmd.AddCommand(
		a.hashCmd(),
		a.batchCmd(),
		a.verifyCmd(),
		a.detectCmd(),
		a.listCmd(),
		a.addCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var cfgErr error
	if a.config != "" {
		a.v.SetConfigFile(a.config)
		cfgErr = a.v.ReadInConfig()
	}

	log, err := logging.New(a.stderr, a.v.GetString("log-level"), a.v.GetString("log-format"))
	if err != nil {
		return err
	}
	a.log = log

	if cfgErr != nil {
		a.log.Warn().Err(cfgErr).Str("config", a.config).Msg("Could not read config file")
	}
	return nil
}

// algorithms resolves the -a flag, falling back to the configured default.
func (a *app) algorithms(cmd *cobra.Command) ([]hashes.Hasher, error) {
	name, _ := cmd.Flags().GetString("algorithm")
	if !cmd.Flags().Changed("algorithm") {
		name = a.v.GetString("algorithm")
	}
	if strings.EqualFold(strings.TrimSpace(name), allAlgorithms) {
		var out []hashes.Hasher
		for _, n := range hashes.List() {
			h, _ := hashes.Get(n)
			out = append(out, h)
		}
		return out, nil
	}
	h, err := hashes.Get(name)
	if err != nil {
		return nil, err
	}
	return []hashes.Hasher{h}, nil
}

func (a *app) decode(raw []byte) (string, error) {
	return input.Decode(raw, a.v.GetString("encoding"))
}

func printDigests(w io.Writer, hs []hashes.Hasher, text string) {
	if len(hs) == 1 {
		fmt.Fprintln(w, hs[0].Hash(text))
		return
	}
	for _, h := range hs {
		fmt.Fprintf(w, "%s:%s\n", h.Name(), h.Hash(text))
	}
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
