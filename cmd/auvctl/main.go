package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/zishang520/engine.io/v2/utils"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		utils.Log().Error("%v", err)
		cancel()
		os.Exit(1)
	}
}
