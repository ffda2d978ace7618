package main

import (
	"fmt"
	"os"

	"github.com/glintui/glint/internal/logger"
)

func main() {
	log, err := logger.New(logger.Options{Level: "warn", Pretty: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	app, err := newAppContext(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
