package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("cmd")

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
