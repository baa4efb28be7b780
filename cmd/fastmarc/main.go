package main

import (
	"github.com/RvanB/fastmarc/cmd/fastmarc/cmd"
)

func main() {
	cmd.Execute()
}
