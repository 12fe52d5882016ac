// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/lvmath/cmd/lvmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
