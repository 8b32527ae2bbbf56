package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	b64 "github.com/chksum/go-chksum/base64"
	"github.com/chksum/go-chksum/source"
)

type base64Cmd struct {
	width int
	out   io.Writer
}

func newBase64Cmd(w io.Writer) *cobra.Command {
	bc := &base64Cmd{out: w}

	cmd := &cobra.Command{
		Use:   "base64 [FILE]",
		Short: "base64 encode a file",
		Long:  hashUsage,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := source.Stdin
			if len(args) > 0 {
				file = args[0]
			}
			return bc.run(file)
		},
	}
	cmd.Flags().IntVarP(&bc.width, "wrap", "w", b64.DefaultLineWidth, "wrap encoded lines after COLS characters (0 to disable)")

	return cmd
}

func (bc *base64Cmd) run(file string) error {
	r, err := source.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()

	enc := b64.NewEncoder(bc.out, bc.width)
	if _, err := io.Copy(enc, r); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	fmt.Fprintln(bc.out)
	return nil
}
