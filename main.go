package main

import (
	"os"

	"github.com/adityab/healthpredict/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
