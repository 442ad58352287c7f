package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"contact-manager-api/internal/client"
	"contact-manager-api/internal/tui"
)

func main() {
	defaultURL := os.Getenv("CONTACT_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:5000"
	}
	serverURL := flag.String("server", defaultURL, "base URL of the contact manager API")
	flag.Parse()

	logger := zap.NewNop()

	api := client.NewAPIClient(*serverURL)
	view := client.NewListView(api, logger)

	p := tea.NewProgram(tui.New(api, view), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "contactcli error: %v\n", err)
		os.Exit(1)
	}
}
