package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-easy-hotreload",
	Short: "go-easy-hotreload adds hot reload instrumentation to the view declarations in your program source code",
	Long:  "go-easy-hotreload adds hot reload instrumentation to the view declarations in your program source code",
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
