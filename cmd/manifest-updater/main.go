package main

import (
	"fmt"
	"os"

	"github.com/worldomonation/manifest-updater/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
