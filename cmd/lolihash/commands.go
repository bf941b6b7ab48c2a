package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"edu/lolihash/internal/hashes"
	"edu/lolihash/internal/input"
	"edu/lolihash/pkg/lstd"
)

func (a *app) hashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [text...]",
		Short: "Print the digest of each argument, or of stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			hs, err := a.algorithms(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				raw, err := io.ReadAll(a.stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text, err := a.decode(raw)
				if err != nil {
					return err
				}
				a.log.Debug().Int("bytes", len(text)).Msg("Hashing stdin")
				printDigests(out, hs, text)
				return nil
			}

			for _, arg := range args {
				text, err := a.decode([]byte(arg))
				if err != nil {
					return err
				}
				printDigests(out, hs, text)
			}
			return nil
		},
	}
	cmd.Flags().StringP("algorithm", "a", "sha3-512", "Digest algorithm, or \"all\"")
	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Hash every line of a file",
		Long:  `Hash each line of a file (or stdin with -f -) and write one algorithm:digest per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			outputFile, _ := cmd.Flags().GetString("output")

			hs, err := a.algorithms(cmd)
			if err != nil {
				return err
			}

			r := a.stdin
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open batch file: %w", err)
				}
				defer f.Close()
				r = f
			}
			lines, err := input.ReadLines(r, a.v.GetString("encoding"))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			var out *os.File
			if outputFile != "" {
				f, err := os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				out = f
				w = f
			}
			bw := bufio.NewWriter(w)
			for _, line := range lines {
				for _, h := range hs {
					fmt.Fprintf(bw, "%s:%s\n", h.Name(), h.Hash(line))
				}
			}
			err = bw.Flush()
			if out != nil {
				if cerr := out.Close(); err == nil {
					err = cerr
				}
			}
			if err != nil {
				return fmt.Errorf("write results: %w", err)
			}

			a.log.Info().Str("file", file).Int("lines", len(lines)).Int("algorithms", len(hs)).Msg("Batch complete")
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "Input file, one text per line (- for stdin, required)")
	cmd.Flags().StringP("output", "o", "", "Output file for results (default stdout)")
	cmd.Flags().StringP("algorithm", "a", "sha3-512", "Digest algorithm, or \"all\"")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify text",
		Short: "Check text against an existing digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("algorithm")
			digest, _ := cmd.Flags().GetString("digest")

			// auto mode tries every algorithm with a matching digest shape
			names := []string{name}
			if name == "" || name == "auto" {
				names = hashes.Detect(digest)
				if len(names) == 0 {
					return fmt.Errorf("no algorithm produces a digest like %q", digest)
				}
				a.log.Info().Strs("candidates", names).Msg("Detected algorithms")
			}

			text, err := a.decode([]byte(args[0]))
			if err != nil {
				return err
			}

			var matched string
			for _, n := range names {
				if ok, reason := hashes.Validate(n, digest); !ok {
					return fmt.Errorf("invalid digest: %s", reason)
				}
				h, err := hashes.Get(n)
				if err != nil {
					return err
				}
				if h.Compare(digest, text) {
					matched = h.Name()
					break
				}
			}

			if matched == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "mismatch")
				return errMismatch
			}
			a.log.Info().Str("algorithm", matched).Msg("Digest matched")
			fmt.Fprintln(cmd.OutOrStdout(), "match")
			return nil
		},
	}
	cmd.Flags().StringP("algorithm", "a", "auto", "Digest algorithm (auto-detect by default)")
	cmd.Flags().StringP("digest", "d", "", "Expected hex digest (required)")
	_ = cmd.MarkFlagRequired("digest")
	return cmd
}

func (a *app) detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect digest",
		Short: "List algorithms that could have produced a digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cands := hashes.Detect(args[0])
			if len(cands) == 0 {
				return fmt.Errorf("no algorithm produces a digest like %q", args[0])
			}
			for _, c := range cands {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Supported algorithms:")
			for _, name := range hashes.List() {
				h, _ := hashes.Get(name)
				fmt.Fprintf(out, "  - %s (%d bytes)\n", name, h.Size())
			}
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add a b",
		Short: "Add two numbers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			l, lerr := strconv.ParseInt(args[0], 10, 64)
			r, rerr := strconv.ParseInt(args[1], 10, 64)
			if lerr == nil && rerr == nil {
				fmt.Fprintln(out, lstd.Add(l, r))
				return nil
			}

			lf, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("not a number: %s", args[0])
			}
			rf, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("not a number: %s", args[1])
			}
			fmt.Fprintln(out, strconv.FormatFloat(lstd.Add(lf, rf), 'g', -1, 64))
			return nil
		},
	}
}
