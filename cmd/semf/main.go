// cmd/semf/main.go
package main

import (
	"semf/internal/appshell"
	"semf/internal/evalapp"
)

func main() {
	appshell.Main(evalapp.RunContext)
}
