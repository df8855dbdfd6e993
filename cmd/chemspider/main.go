// Command chemspider lists and calls ChemSpider web service operations from
// the command line.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = zap.L().Sync()
}
