package main

import (
	"github.com/MeKo-Tech/ridgeline/internal/cmd"
)

func main() {
	cmd.Execute()
}
