package ashengine

import (
	"context"
	"io"
	"log/slog"

	"github.com/Borislavv/go-ash-engine/config"
	"github.com/Borislavv/go-ash-engine/internal/replacer"
	"github.com/Borislavv/go-ash-engine/internal/telemetry"
)

// AccessType classifies buffer-pool accesses passed to RecordAccess.
type AccessType = replacer.AccessType

const (
	AccessUnknown = replacer.Unknown
	AccessGet     = replacer.Get
	AccessScan    = replacer.Scan
	AccessLookup  = replacer.Lookup
)

var ErrInvalidFrame = replacer.ErrInvalidFrame

type AshEngine interface {
	replacer.Replacer
	telemetry.Logger
	io.Closer
}

type Engine struct {
	replacer.Replacer
	telemetry.Logger
	cls context.CancelFunc
}

func New(ctx context.Context, cfg *config.Engine, logger *slog.Logger) *Engine {
	ctx, cancel := context.WithCancel(ctx)
	lruk := replacer.NewLRUK(cfg.Replacer.Frames, cfg.Replacer.K)
	telemeter := telemetry.New(ctx, cfg, logger, lruk)
	return &Engine{cls: cancel, Replacer: lruk, Logger: telemeter}
}

func (e *Engine) Close() error {
	e.cls()
	return nil
}
