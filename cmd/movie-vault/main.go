package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	_ "movie-vault/docs"
)

// @title Movie Vault API
// @version 1.0
// @description API for a local movie library: imports video files from disk, enriches them with OMDB metadata, and tracks watches

// @contact.name API Support
// @contact.url http://github.com/yourusername/movie-vault

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /api/v1
// @schemes http https

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
