// Command uirename renames the Unity UI scripts to their Crystal names.
package main

import (
	"os"

	"github.com/leapstack-labs/uirename/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
