package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bnema/prep/internal/adapters/catalog"
	"github.com/bnema/prep/internal/adapters/kv/chain"
	"github.com/bnema/prep/internal/adapters/kv/file"
	"github.com/bnema/prep/internal/adapters/kv/memory"
	"github.com/bnema/prep/internal/adapters/kv/sqlite"
	"github.com/bnema/prep/internal/application"
	"github.com/bnema/prep/internal/config"
	"github.com/bnema/prep/internal/domain"
	"github.com/bnema/prep/internal/logging"
	"github.com/bnema/prep/internal/ports"
	"github.com/bnema/prep/internal/store"
	"go.uber.org/zap"
)

const (
	progressKey  = "syllabusProgress"
	todosKey     = "todos"
	activeTabKey = "activeTab"

	closeTimeout = 5 * time.Second
)

var errAppNotOpen = errors.New("application is not wired")

type app struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog domain.Catalog

	progressStore *store.Store[domain.ProgressState]
	todoStore     *store.Store[domain.TodoList]
	tabStore      *store.Store[domain.Tab]
	closeKV       func() error

	progress *application.ProgressTracker
	todos    *application.TodoManager
	tabs     *application.TabSelector
	now      func() time.Time
}

func (a *app) open(ctx context.Context, opts rootOptions) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(opts.configPath, homeDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, opts.verbose)
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("wire catalog: %w", err)
	}

	kv, closeKV, err := openKV(cfg, homeDir, logger)
	if err != nil {
		return fmt.Errorf("wire storage: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.catalog = cat
	a.closeKV = closeKV
	a.now = time.Now

	a.progressStore, err = store.Open(ctx, kv, store.Config[domain.ProgressState]{
		Key:     progressKey,
		Default: domain.ProgressState{},
		Logger:  logger,
	})
	if err != nil {
		return errors.Join(fmt.Errorf("open %s store: %w", progressKey, err), a.close(ctx))
	}

	a.todoStore, err = store.Open(ctx, kv, store.Config[domain.TodoList]{
		Key:     todosKey,
		Default: domain.TodoList{},
		Logger:  logger,
	})
	if err != nil {
		return errors.Join(fmt.Errorf("open %s store: %w", todosKey, err), a.close(ctx))
	}

	a.tabStore, err = store.Open(ctx, kv, store.Config[domain.Tab]{
		Key:     activeTabKey,
		Default: domain.TabSyllabus,
		Codec:   store.StringCodec[domain.Tab]{Parse: domain.ParseTab},
		Logger:  logger,
	})
	if err != nil {
		return errors.Join(fmt.Errorf("open %s store: %w", activeTabKey, err), a.close(ctx))
	}

	a.progress = application.NewProgressTracker(a.progressStore, cat)
	a.todos = application.NewTodoManager(a.todoStore, ports.SystemClock{}, ports.UUIDGenerator{})
	a.tabs = application.NewTabSelector(a.tabStore)

	logger.Debug("wired",
		zap.String("backend", string(cfg.Storage.Backend)),
		zap.String("path", cfg.Storage.Path),
		zap.Int("exams", len(cat.Exams)),
	)

	return nil
}

// close flushes pending writes and releases the storage. It is safe to call
// more than once. A failed durable write only logs: the command already
// acted on the in-memory value.
func (a *app) close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()

	var writeErrs []error
	if a.progressStore != nil {
		writeErrs = append(writeErrs, a.progressStore.Close(ctx))
	}
	if a.todoStore != nil {
		writeErrs = append(writeErrs, a.todoStore.Close(ctx))
	}
	if a.tabStore != nil {
		writeErrs = append(writeErrs, a.tabStore.Close(ctx))
	}
	if err := errors.Join(writeErrs...); err != nil && a.logger != nil {
		a.logger.Warn("state not persisted", zap.Error(err))
	}

	var closeErr error
	if a.closeKV != nil {
		closeErr = a.closeKV()
		a.closeKV = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}

	if closeErr != nil {
		return fmt.Errorf("close storage: %w", closeErr)
	}

	return nil
}

func (a *app) ready() error {
	if a.progress == nil || a.todos == nil || a.tabs == nil {
		return errAppNotOpen
	}

	return nil
}

func openKV(cfg config.Config, homeDir string, logger *zap.Logger) (ports.KVStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memory.NewStore(), noop, nil
	case config.BackendSQLite:
		fallback := file.NewStore(config.DataDir(homeDir))
		db, err := sqlite.Open(cfg.Storage.Path)
		if err != nil {
			logger.Warn("sqlite unavailable, using file storage", zap.String("path", cfg.Storage.Path), zap.Error(err))
			return fallback, noop, nil
		}
		kv, err := chain.NewStoreChecked(db, fallback)
		if err != nil {
			return nil, nil, errors.Join(err, db.Close())
		}
		return kv, db.Close, nil
	default:
		return file.NewStore(cfg.Storage.Path), noop, nil
	}
}
