// cmd/semf-scan/main.go
package main

import (
	"semf/internal/appshell"
	"semf/internal/scanapp"
)

func main() {
	appshell.Main(scanapp.RunContext)
}
