package cmd

import "github.com/spf13/cobra"

var riscv32Cmd = &cobra.Command{
	Use:     "riscv32",
	GroupID: "arch",
	Short:   "RV32GC architecture",
	Long:    `Functions related to the RV32GC (RV32IMAFDC) architecture.`,
}

func init() {
	riscv32Cmd.AddCommand(demoCmd)
	riscv32Cmd.AddCommand(versionCmd)
}
