// cmd/liftprep/main.go
package main

import (
	"liftprep/internal/app"
	"liftprep/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
