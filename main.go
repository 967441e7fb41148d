// main holds the entrypoint for the repograde CLI.
package main

import (
	"fmt"
	"os"

	"github.com/repograde/repograde/cmd"
	"github.com/repograde/repograde/internal/reportstore"
)

func main() {
	cmd.SetStoreManager(reportstore.Manager)

	err := cmd.Execute()
	reportstore.CloseStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
