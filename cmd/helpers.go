package cmd

import (
	"fmt"

	"github.com/blackstone-contractors/website/internal/blog"
	"github.com/blackstone-contractors/website/internal/config"
	"github.com/blackstone-contractors/website/internal/contact"
	"github.com/blackstone-contractors/website/internal/content"
	"github.com/blackstone-contractors/website/internal/db"
	"github.com/blackstone-contractors/website/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `blackstone init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// openDatabase opens the inquiry database named by the config.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	database, err := db.Open(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return database, nil
}

// buildSite assembles the website from the compiled-in content. intake may
// be nil for a static export.
func buildSite(cfg *config.Config, static bool, intake *contact.Intake) (*site.Site, error) {
	posts, err := blog.Load()
	if err != nil {
		return nil, fmt.Errorf("loading blog posts: %w", err)
	}
	return site.New(site.Options{
		SiteName: cfg.SiteName,
		Static:   static,
		Logger:   logger,
	}, content.Catalog(), posts, intake)
}
