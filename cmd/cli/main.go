package main

import "github.com/m-z-k/RV32-asm/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
