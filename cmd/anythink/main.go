package main

import (
	"os"

	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
