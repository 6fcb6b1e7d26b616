package service

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-mapgen/config"
	"github.com/beka-birhanu/vinom-mapgen/maze"
	"github.com/beka-birhanu/vinom-mapgen/service/i"
	"github.com/google/uuid"
)

var (
	ErrNilWriter      = errors.New("map writer must not be nil")
	ErrNilLogger      = errors.New("map logger must not be nil")
	ErrInvalidMapName = errors.New("map name must be a single line")
)

// MapService generates one map per run and writes it to out. Diagnostics go to
// the logger, never to out.
type MapService struct {
	out       io.Writer
	logger    i.Logger
	generator i.MapGenerator
}

// NewMapService creates a MapService. A nil generator means maze.Generator.
func NewMapService(out io.Writer, logger i.Logger, generator i.MapGenerator) (*MapService, error) {
	if out == nil {
		return nil, ErrNilWriter
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	if generator == nil {
		generator = maze.Generator{}
	}

	return &MapService{
		out:       out,
		logger:    logger,
		generator: generator,
	}, nil
}

// Run validates cfg, generates a map and writes it. Nothing is written when any
// step fails.
func (s *MapService) Run(cfg config.Config) error {
	runID := uuid.New()

	if strings.ContainsAny(cfg.Name, "\r\n") {
		s.logger.Error(fmt.Sprintf("Run %s rejected: %v", runID, ErrInvalidMapName))
		return ErrInvalidMapName
	}
	if err := cfg.Validate(); err != nil {
		s.logger.Error(fmt.Sprintf("Run %s rejected: %v", runID, err))
		return err
	}

	boundary := maze.BoundaryCount(cfg.Width, cfg.Height)
	if cfg.WallCount == boundary {
		s.logger.Warning(fmt.Sprintf("Run %s: wall count %d leaves no random walls", runID, cfg.WallCount))
	}

	rng, seed := maze.NewRand(cfg.Seed)
	s.logger.Debug(fmt.Sprintf("Run %s: width=%d height=%d walls=%d boundary=%d seed=%d",
		runID, cfg.Width, cfg.Height, cfg.WallCount, boundary, seed))

	lines, err := s.generator.Generate(cfg.Width, cfg.Height, cfg.WallCount, rng)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Run %s failed generating map: %v", runID, err))
		return fmt.Errorf("generating map: %w", err)
	}

	var b strings.Builder
	if cfg.Name != "" {
		b.WriteString("Name=" + cfg.Name + "\n")
	}
	b.WriteString(maze.Format(lines))
	b.WriteString("\n")

	if _, err := io.WriteString(s.out, b.String()); err != nil {
		s.logger.Error(fmt.Sprintf("Run %s failed writing map: %v", runID, err))
		return fmt.Errorf("writing map: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Run %s: generated %dx%d map with %d walls (replay with -seed %d)",
		runID, cfg.Width, cfg.Height, cfg.WallCount, seed))
	return nil
}
