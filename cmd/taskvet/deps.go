package main

import (
	"github.com/rs/zerolog/log"

	"github.com/taskvet/taskvet/cmd/taskvet/di"
	"github.com/taskvet/taskvet/internal/task"
)

// newContainer builds the DI container from the global flags.
func newContainer() *di.Container {
	db := dbFile
	if db == "" {
		db = task.DefaultDBFile
	}

	return di.NewContainer(resolvePolicyPath(), db)
}

// closeContainer shuts the container down, logging any failure.
func closeContainer(c *di.Container) {
	if err := c.Shutdown(); err != nil {
		log.Error().Err(err).Msg("container shutdown error")
	}
}
