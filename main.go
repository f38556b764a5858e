package main

import (
	"fmt"
	"os"
)

func main() {
	app := NewApp()

	rootCmd := SetupCommands(app)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
