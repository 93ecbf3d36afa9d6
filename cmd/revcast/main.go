// main is the entry point for the revcast CLI.
package main

import (
	"github.com/basetelco/revcast/cmd"
	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/internal/snapcache"
)

func main() {
	err := cmd.Execute()
	snapcache.CloseStores() // LogFatal exits, so close before reporting
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
