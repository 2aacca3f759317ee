package main

import (
	"github.com/krownhq/krown-cli/internal/cmd"
)

func main() {
	cmd.Execute()
}
