package main

import (
	"github.com/ourzora/addrbook/cmd"
)

func main() {
	cmd.Execute()
}
