// cmd/nmsa/main.go
package main

import (
	"nmsa/internal/app"
	"nmsa/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
