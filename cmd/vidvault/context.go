package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gofrs/flock"

	"vidvault/internal/config"
	"vidvault/internal/logging"
	"vidvault/internal/persist"
	"vidvault/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// library bundles an open store with the config it persists under.
type library struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
	loaded persist.Result
}

func (l *library) save() error {
	return persist.Save(l.cfg.Paths.LibraryFile, l.store)
}

// withLibrary loads the store, runs fn, and saves when fn left mutations
// behind. A lock file next to the library serializes vidvault processes
// writing the same library; readers stay safe through the atomic rename on
// save and take no lock.
func (c *commandContext) withLibrary(fn func(*library) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	lock := flock.New(cfg.Paths.LibraryFile + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire library lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("library %s is in use by another vidvault process", cfg.Paths.LibraryFile)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	return c.run(cfg, logger, fn)
}

// withLibraryRead is withLibrary without the writer lock, for commands that
// never mutate.
func (c *commandContext) withLibraryRead(fn func(*library) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	return c.run(cfg, logger, fn)
}

func (c *commandContext) run(cfg *config.Config, logger *slog.Logger, fn func(*library) error) error {
	st, result, err := persist.Load(cfg.Paths.LibraryFile, logger)
	if err != nil {
		return err
	}
	lib := &library{cfg: cfg, logger: logger, store: st, loaded: result}
	if err := fn(lib); err != nil {
		return err
	}
	if lib.store.Dirty() {
		if err := lib.save(); err != nil {
			return fmt.Errorf("save library: %w", err)
		}
	}
	return nil
}
