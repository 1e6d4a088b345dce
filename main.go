package main

import (
	"os"

	"github.com/smazurov/nucled/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
