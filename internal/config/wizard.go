package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the Blackstone Contractors site.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:    "Site name",
		Default:  defaults.SiteName,
		Validate: validateRequired,
	}
	siteName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}

	// 2. Public base URL.
	urlPrompt := promptui.Prompt{
		Label:    "Public base URL",
		Default:  defaults.BaseURL,
		Validate: validateBaseURL,
	}
	baseURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(defaults.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	// 4. Inquiry storage.
	storePrompt := promptui.Select{
		Label: "Store contact form inquiries in sqlite?",
		Items: []string{"yes", "no"},
	}
	storeIdx, _, err := storePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("inquiry storage: %w", err)
	}

	dataDir := defaults.DataDir
	if storeIdx == 0 {
		dirPrompt := promptui.Prompt{
			Label:    "Data directory",
			Default:  defaults.DataDir,
			Validate: validateRequired,
		}
		dataDir, err = dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("data dir: %w", err)
		}
	}

	// 5. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{"json", "console"},
	}
	_, format, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}

	cfg := defaults
	cfg.SiteName = strings.TrimSpace(siteName)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	cfg.Server.Port = port
	cfg.DataDir = dataDir
	cfg.Contact.StoreInquiries = storeIdx == 0
	cfg.Log.Format = format

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func validateBaseURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("enter an absolute URL such as https://example.com")
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 65535 {
		return errors.New("enter a port between 1 and 65535")
	}
	return nil
}
