package main

import (
	"github.com/kurumiimari/hexbytes/cmd/hexgen/cmd"
)

func main() {
	cmd.Execute()
}
