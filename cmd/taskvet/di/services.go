package di

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/samber/do/v2"

	"github.com/taskvet/taskvet/internal/logging"
	"github.com/taskvet/taskvet/internal/policy"
	"github.com/taskvet/taskvet/internal/task"
)

// PolicyService holds the loaded policy and its source path.
type PolicyService struct {
	Config *policy.Config
	Path   string
}

// NewPolicyService loads the policy artifact. A missing file is not an
// error: task commands then run under the strict defaults.
func NewPolicyService(i do.Injector) (*PolicyService, error) {
	path := do.MustInvokeNamed[string](i, PolicyPathKey)

	if _, err := os.Stat(path); err != nil {
		return &PolicyService{Config: policy.Default(), Path: path}, nil
	}

	cfg, err := policy.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &PolicyService{Config: cfg, Path: path}, nil
}

// LoggerService holds the configured zerolog logger.
type LoggerService struct {
	Logger *zerolog.Logger
}

// NewLoggerService creates the logger from the policy's logging block.
func NewLoggerService(i do.Injector) (*LoggerService, error) {
	polSvc := do.MustInvoke[*PolicyService](i)

	logger, err := logging.New(polSvc.Config.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &LoggerService{Logger: &logger}, nil
}

// StoreService holds the task database store.
type StoreService struct {
	Store *task.Store
}

// NewStoreService creates the store over the configured database path.
func NewStoreService(i do.Injector) (*StoreService, error) {
	dbPath := do.MustInvokeNamed[string](i, DBPathKey)
	loggerSvc := do.MustInvoke[*LoggerService](i)

	return &StoreService{Store: task.NewStore(dbPath, *loggerSvc.Logger)}, nil
}
