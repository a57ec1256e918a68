// Package di provides dependency injection for the taskvet CLI using
// samber/do v2.
package di

import (
	"fmt"

	"github.com/samber/do/v2"
)

// Named value keys for the container. These allow multiple string values to
// coexist in the injector.
const (
	// PolicyPathKey is the named key for the policy file path.
	PolicyPathKey = "policy.path"
	// DBPathKey is the named key for the task database path.
	DBPathKey = "db.path"
)

// Container wraps the do.Injector with taskvet-specific configuration.
type Container struct {
	injector *do.RootScope
}

// NewContainer creates and configures the DI container. The policyPath and
// dbPath parameters locate the policy artifact and the task database; all
// service providers are registered during container creation.
func NewContainer(policyPath, dbPath string) *Container {
	injector := do.New()

	do.ProvideNamedValue(injector, PolicyPathKey, policyPath)
	do.ProvideNamedValue(injector, DBPathKey, dbPath)

	do.Provide(injector, NewPolicyService)
	do.Provide(injector, NewLoggerService)
	do.Provide(injector, NewStoreService)

	return &Container{injector: injector}
}

// Injector returns the underlying do.Injector for service resolution.
func (c *Container) Injector() *do.RootScope {
	return c.injector
}

// Invoke resolves a service from the container.
// Returns an error if the service is not registered or fails to initialize.
func Invoke[T any](c *Container) (T, error) {
	return do.Invoke[T](c.injector)
}

// MustInvoke resolves a service from the container or panics.
// Use this only during command startup where errors are fatal.
func MustInvoke[T any](c *Container) T {
	return do.MustInvoke[T](c.injector)
}

// Shutdown gracefully shuts down all services in reverse order of
// initialization.
func (c *Container) Shutdown() error {
	report := c.injector.Shutdown()
	if report != nil && !report.Succeed {
		return fmt.Errorf("shutdown failed: %s", report.Error())
	}
	return nil
}
