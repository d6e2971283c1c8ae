package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "riscv32asm",
	Short: "RV32GC in-memory assembler",
	Long:  `riscv32asm is a demo CLI over the riscv32 package's in-memory RV32GC assembler.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {

	rootCmd.AddGroup(&cobra.Group{
		ID:    "arch",
		Title: "Architectures",
	})

	rootCmd.AddCommand(riscv32Cmd)
}
