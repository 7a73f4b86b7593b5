// Command server runs the dictionary graph HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) or environment variables.
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/xnillio/lexigraph/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
