package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chksum/go-chksum/checksum"
	"github.com/chksum/go-chksum/digest"
	"github.com/chksum/go-chksum/source"
)

const hashUsage = `With no FILE, or when FILE is -, read standard input.`

type hashCmd struct {
	algorithm digest.Algorithm
	check     bool
	tag       bool
	out       io.Writer
}

func newHashCmd(w io.Writer, algorithm digest.Algorithm) *cobra.Command {
	hc := &hashCmd{algorithm: algorithm, out: w}

	cmd := &cobra.Command{
		Use:   strings.ToLower(algorithm.String()) + " [FILE...]",
		Short: fmt.Sprintf("compute and check %s message digests", algorithm),
		Long:  hashUsage,
		RunE: func(cmd *cobra.Command, args []string) error {
			return hc.run(args)
		},
	}
	cmd.Flags().BoolVarP(&hc.check, "check", "c", false, "read checksums from the FILEs and check them")
	cmd.Flags().BoolVarP(&hc.tag, "tag", "t", false, "create a BSD-style checksum")

	return cmd
}

func (hc *hashCmd) run(files []string) error {
	if len(files) == 0 {
		files = []string{source.Stdin}
	}
	if hc.check {
		return hc.runCheck(files)
	}
	return hc.runDigest(files)
}

// runDigest prints one checksum line per file. Unreadable files are
// reported on stderr and counted, not fatal.
func (hc *hashCmd) runDigest(files []string) error {
	style := checksum.GNU
	if hc.tag {
		style = checksum.BSD
	}

	failed := 0
	for _, file := range files {
		d, err := hc.digestFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "chksum: %v\n", err)
			failed++
			continue
		}
		fmt.Fprintln(hc.out, checksum.Format(d, file, style))
	}

	if failed > 0 {
		return fmt.Errorf("WARNING: %d FAILS", failed)
	}
	return nil
}

func (hc *hashCmd) digestFile(file string) (digest.Digest, error) {
	r, err := source.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return checksum.Compute(r, hc.algorithm)
}

// runCheck treats each file as a checksum list and verifies the files the
// list names.
func (hc *hashCmd) runCheck(files []string) error {
	checker, err := checksum.NewChecker(0)
	if err != nil {
		return err
	}

	failed := 0
	for _, file := range files {
		r, err := source.Open(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "chksum: %v\n", err)
			failed++
			continue
		}

		results, err := checker.CheckList(r)
		r.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "chksum: %s: %v\n", file, err)
			failed++
		}

		for _, result := range results {
			switch {
			case result.Err == nil:
				fmt.Fprintf(hc.out, "%s: OK\n", result.Entry.Path)
			case checksum.IsMismatch(result.Err):
				fmt.Fprintf(hc.out, "%s: FAILED\n", result.Entry.Path)
				failed++
			default:
				fmt.Fprintf(os.Stderr, "chksum: %s: %v\n", file, result.Err)
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("WARNING: %d FAILS", failed)
	}
	return nil
}
