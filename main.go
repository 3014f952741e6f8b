package main

import (
	"github.com/tooldex/tooldex/cmd"
)

func main() {
	cmd.Execute()
}
