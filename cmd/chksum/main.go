package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chksum/go-chksum/digest"
)

func main() {
	cmd := newRootCmd(os.Stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(w io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chksum",
		Short:         "compute and check MD5 and SHA256 message digests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newHashCmd(w, digest.MD5),
		newHashCmd(w, digest.SHA256),
		newBase64Cmd(w),
	)
	return cmd
}
