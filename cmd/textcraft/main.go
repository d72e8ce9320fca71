// Package main starts the textcraft game on the terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	textcraftcmd "github.com/louisbranch/textcraft/internal/cmd/textcraft"
	"github.com/louisbranch/textcraft/internal/platform/config"
)

func main() {
	cfg, err := textcraftcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[TEXTCRAFT] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := textcraftcmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		config.Exitf("textcraft: %v", err)
	}
}
