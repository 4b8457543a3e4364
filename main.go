package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"skiffadmin/cmd"
	"skiffadmin/internal/api"
	"skiffadmin/internal/proxy"
	"skiffadmin/internal/session"
	"skiffadmin/internal/ui"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if config.Serve {
		log := logrus.New()
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		gateway := proxy.New(config.APIBaseURL, log)
		if err := gateway.ListenAndServe(ctx, config.ListenAddr); err != nil {
			log.WithError(err).Fatal("gateway failed")
		}
		return
	}

	client := api.New(config.APIBaseURL)
	store := session.New(config.ConfigDir)

	p := tea.NewProgram(ui.New(client, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
