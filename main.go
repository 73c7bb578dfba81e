// main.go
//
// Entry point for packcheck; command handling lives in cmd/root.go.

package main

import (
	"github.com/alivastudio/motorracing-manager/cmd"
)

func main() {
	cmd.Execute()
}
