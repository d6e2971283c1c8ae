package cmd

import (
	"github.com/m-z-k/RV32-asm/architecture/riscv32"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	GroupID: "arch",
	Short:   "Print the assembler package version",
	Run: func(cmd *cobra.Command, args []string) {
		a := riscv32.New(riscv32.RV32I, 0, nil)
		cmd.Printf("%04x\n", a.GetVersion())
	},
}
