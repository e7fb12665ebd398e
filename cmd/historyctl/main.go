// Command historyctl inspects and exports the stored prompt history.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"

	"github.com/heartmarshall/promptcraft-backend/internal/app"
	"github.com/heartmarshall/promptcraft-backend/internal/config"
)

func main() {
	root := newRootCmd(func(ctx context.Context, path string) (historyReader, func(), error) {
		cfg, err := config.LoadFrom(path)
		if err != nil {
			return nil, nil, err
		}
		return app.OpenHistory(ctx, cfg, app.NewLogger(cfg.Log))
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
