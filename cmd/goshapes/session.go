package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/goshapes/internal/config"
	"github.com/philipparndt/goshapes/internal/editor"
	"github.com/philipparndt/goshapes/internal/logging"
	"github.com/philipparndt/goshapes/pkg/shape"
)

var flags config.Flags

// session is everything a command needs to work on a document
type session struct {
	path    string
	cfg     config.Config
	doc     *shape.Document
	logger  *slog.Logger
	options editor.Options
}

// openSession resolves the configuration for path, sets up logging and
// loads the document. With create set a missing document starts empty.
func openSession(path string, create bool) (*session, error) {
	cfg, err := config.Resolve(flags.ConfigPath, path)
	if err != nil {
		return nil, err
	}
	cfg, err = flags.Apply(cfg)
	if err != nil {
		return nil, err
	}

	logger, err := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return nil, err
	}
	cfg.WarnUnknown(logger)

	doc, err := shape.Load(path)
	switch {
	case err == nil:
	case create && errors.Is(err, os.ErrNotExist):
		logger.Info("starting a new document", "file", path)
		doc = shape.NewDocument()
		doc.HandleRadius = cfg.Editor.HandleRadius
	default:
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	options := cfg.EditorOptions(logger)
	options.HandleRadius = flags.HandleRadius(cfg, doc.HandleRadius)
	if doc.HandleRadius <= 0 {
		doc.HandleRadius = options.HandleRadius
	}

	return &session{
		path:    path,
		cfg:     cfg,
		doc:     doc,
		logger:  logger,
		options: options,
	}, nil
}
