package main

import (
	"os"

	"github.com/loxlang/loxscan/cmd"
)

func main() {
	app := cmd.NewLoxApp()
	os.Exit(app.Main(os.Args[1:]))
}
