// Command icx compresses 24-bpp bitmaps into, and decompresses them back
// out of, this codec's private bitstream container.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sborovik/icx"
)

var (
	compress   bool
	decompress bool
	logFile    string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:           "icx [input] [output]",
		Short:         "icx compresses and decompresses bitmaps with a private codebook",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(2),
		RunE:          run,
	}
	root.Flags().BoolVarP(&compress, "compress", "c", false, "compress a bitmap into the private container format")
	root.Flags().BoolVarP(&decompress, "decompress", "d", false, "decompress the private container format into a bitmap")
	root.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	root.Flags().BoolVar(&verbose, "verbose", false, "log every pipeline stage transition")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "icx:", err)
		if _, ok := err.(*icx.Error); ok {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if compress == decompress {
		return fmt.Errorf("exactly one of --compress or --decompress must be given")
	}

	inPath, outPath := args[0], args[1]
	if inPath == "" || outPath == "" {
		return icx.NewError("CLI", icx.MissingPath, nil)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return icx.NewError("CLI", icx.OpenFailure, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return icx.NewError("CLI", icx.CreateFailure, err)
	}
	defer out.Close()

	pipeline := icx.NewPipeline(icx.LogOptions{LogFile: logFile, Verbose: verbose})
	if compress {
		return pipeline.Encode(in, out)
	}
	return pipeline.Decode(in, out)
}
