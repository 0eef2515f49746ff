package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	serrors "github.com/amkisko/sex-cli/internal/errors"
	"github.com/amkisko/sex-cli/internal/keychain"
	"github.com/amkisko/sex-cli/internal/sentry"
	"github.com/amkisko/sex-cli/internal/settings"
	"github.com/amkisko/sex-cli/internal/store"
	"github.com/amkisko/sex-cli/internal/ui"
)

// startSpinner creates and starts a spinner with the given message when not in
// verbose or debug mode. Returns the spinner and a function that should be
// deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// loadConfig loads the local config backed by the OS keychain.
func loadConfig() (*store.Config, error) {
	return store.Load(keychain.System{})
}

// newClient builds an API client pointed at the user's configured base URL.
func newClient() *sentry.Client {
	client := sentry.NewClient()
	prefs, err := settings.Load()
	if err != nil {
		Logger.Warnf("Failed to load settings, using defaults: %v", err)
		return client
	}
	if prefs.BaseURL != "" {
		client.BaseURL = prefs.BaseURL
	}
	return client
}

// authenticatedClient builds a client logged in with the organization's
// stored token. Returns ErrNotLoggedIn when no token is stored.
func authenticatedClient(org *store.Organization) (*sentry.Client, error) {
	token, found, err := org.AuthToken()
	if err != nil {
		return nil, fmt.Errorf("failed to read auth token for %s: %w", org.Name, err)
	}
	if !found {
		return nil, fmt.Errorf("organization %s: %w", org.Name, serrors.ErrNotLoggedIn)
	}

	client := newClient()
	client.Login(token)
	return client, nil
}

// refreshInterval returns the dashboard poll interval from user settings.
func refreshInterval() time.Duration {
	prefs, err := settings.Load()
	if err != nil || prefs.RefreshSeconds <= 0 {
		return time.Duration(settings.DefaultRefreshSeconds) * time.Second
	}
	return time.Duration(prefs.RefreshSeconds) * time.Second
}
