package main

import (
	"context"
	"os"

	"kizuna-dashboard/internal/cmd"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
