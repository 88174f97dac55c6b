package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	go hookShutdownSignal(cancel)
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("segdec failed")
		os.Exit(1)
	}
}

func hookShutdownSignal(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	cancel()
}
