// cmd/semf-fit/main.go
package main

import (
	"semf/internal/appshell"
	"semf/internal/fitapp"
)

func main() {
	appshell.Main(fitapp.RunContext)
}
