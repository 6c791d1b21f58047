package main

import (
	"tripweaver/cmd/cmd"
	"tripweaver/internal/logger"
)

func main() {
	logger.Init() // Initialize the logger
	cmd.Execute()
}
