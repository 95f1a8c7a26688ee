package container

import (
	"context"
	"fmt"
	"log"
	"os"

	"drugdash/adapters/sqlstore"
	"drugdash/domain/dataset"
	"drugdash/internal/auth"
	"drugdash/internal/config"
	"drugdash/internal/dashboard"
	loader "drugdash/internal/dataset"
	"drugdash/internal/metrics"
	"drugdash/internal/session"
	"drugdash/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB      *sqlx.DB
	Metrics *metrics.Metrics

	// Stores
	Records     ports.RecordStore
	Credentials ports.CredentialStore

	// Loaded state
	Raw     *dataset.Dataset
	Dataset *dataset.Dataset

	Auth      *auth.Service
	Sessions  *session.Manager
	Dashboard *dashboard.Service
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config:   cfg,
		Sessions: session.NewManager(),
	}
	if cfg.Metrics.Enabled {
		c.Metrics = metrics.New()
	}
	return c, nil
}

// Open connects the configured store and initializes the components on top of it
func (c *Container) Open(ctx context.Context) error {
	db, err := sqlstore.Open(ctx, c.Config.Store.Driver, c.Config.Store.URL)
	if err != nil {
		return err
	}
	return c.InitWithDatabase(db)
}

// InitWithDatabase initializes components that require database access
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}

	c.DB = db
	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.Records = sqlstore.NewRecordStore(db, c.Config.Store.Driver)
	c.Credentials = sqlstore.NewCredentialStore(db)
	c.Auth = auth.NewService(c.Credentials)

	log.Printf("Container initialized with %s store", c.Config.Store.Driver)
	return nil
}

// Bootstrap loads the dataset into the store, cleans it and seeds the export
// credentials. A missing credentials file leaves the gate closed to everyone.
func (c *Container) Bootstrap(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("container has no database, call InitWithDatabase first")
	}

	raw, err := loader.NewLoader(c.Records).Load(ctx, c.Config.Data.File)
	if err != nil {
		return err
	}
	c.Raw = raw
	c.Dataset = loader.Clean(raw)

	credPath := c.Config.Data.CredentialsFile
	if _, err := os.Stat(credPath); err != nil {
		log.Printf("Warning: credentials file %s not readable, export login disabled: %v", credPath, err)
	} else if _, err := auth.Seed(ctx, c.Credentials, credPath, c.Config.Auth.BcryptCost); err != nil {
		return err
	}

	c.Dashboard = dashboard.NewService(c.Dataset, c.Records, c.Auth, c.Sessions, c.Metrics)
	log.Printf("Bootstrap complete: %d of %d records usable, %d conditions",
		c.Dataset.Len(), raw.Len(), len(c.Dataset.Conditions))
	return nil
}

// Close releases the database connection
func (c *Container) Close() error {
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
