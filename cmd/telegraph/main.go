// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"

	"github.com/tyndyll/telegraph/cmd/telegraph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
