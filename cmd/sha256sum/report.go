package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kmolski/sha256/pipeline"
)

// writeReport writes one record per result, in the order given.
func writeReport(w io.Writer, results []pipeline.Result) error {
	bw := bufio.NewWriter(w)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(bw, "#-;%s\n%v  %s\n", res.Path, res.Err, res.Path)
			continue
		}
		fmt.Fprintf(bw, "#%d;%s\n%s  %s\n", res.Elapsed.Milliseconds(), res.Path, res.Digest, res.Path)
	}
	return bw.Flush()
}
