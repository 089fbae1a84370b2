package main

import (
	"os"

	"github.com/renatorak20/MyShowListBE/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
