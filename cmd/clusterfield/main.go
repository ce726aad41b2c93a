// cmd/clusterfield/main.go
package main

import (
	"os"

	"github.com/katalvlaran/clusterfield/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
