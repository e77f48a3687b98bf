package main

import (
	"os"

	"github.com/talis/babel-go-client/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
