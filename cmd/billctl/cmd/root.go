// Package cmd provides the billctl CLI commands.
package cmd

import (
	"fmt"

	"billed/internal/client"
	"billed/pkg/config"
	"billed/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	apiURL      string
	sessionFile string
)

var rootCmd = &cobra.Command{
	Use:   "billctl",
	Short: "Submit and track expense bills from the command line",
	Long: `billctl drives the Billed expense-report client against a running
gateway.

Example:
  billctl login --email employee@test.tld --password employee
  billctl submit --file ticket.png --type Transports --name "Vol Paris-Londres" \
      --date 2023-04-14 --amount 250 --vat 70 --pct 20
  billctl bills`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "gateway base URL (default from BILLED_API_URL)")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session", "", "session file path (default from BILLED_SESSION_FILE)")
}

// clientEnv bundles everything a command needs to drive the controllers.
type clientEnv struct {
	store   client.Store
	session *client.FileSession
	nav     *client.Navigation
	logger  *zap.Logger
}

func newClientEnv() (*clientEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logger.Level); err != nil {
		return nil, err
	}
	log := logger.Get()

	if apiURL == "" {
		apiURL = cfg.Client.APIURL
	}
	if sessionFile == "" {
		sessionFile = cfg.Client.SessionFile
	}

	session, err := client.NewFileSession(sessionFile)
	if err != nil {
		return nil, err
	}

	nav := client.NewNavigation(func(path string) {
		fmt.Printf("→ %s\n", path)
	})

	return &clientEnv{
		store:   client.NewRestStore(apiURL, session, log),
		session: session,
		nav:     nav,
		logger:  log,
	}, nil
}

func (e *clientEnv) save() error {
	return e.session.Save()
}
