package main

import (
	"os"

	"github.com/nucheck/nucheck/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
