package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"loadout/internal/gear"
	"loadout/internal/helmet"
	"loadout/internal/preset"
	"loadout/internal/store"
	"loadout/internal/validate"
)

type Generator interface {
	Generate(req gear.Request) (*gear.Loadout, error)
}

type Presets interface {
	Bundles() []*preset.Bundle
	TierForLevel(bundle string, level int) (string, bool)
	Suggest(name string) string
}

type Helmets interface {
	Recipe(tpl string) (helmet.Recipe, bool)
	Assemble(p helmet.Putter, tpl string, level int, night bool) string
}

// Deps wires the server to the generator. Journal and Validate may be nil.
type Deps struct {
	Generator Generator
	Presets   Presets
	Helmets   Helmets
	Journal   store.Store
	Validate  func() *validate.Report
	Logger    *zap.Logger
}

type Server struct {
	deps   Deps
	logger *zap.Logger
	mcp    *sdk.Server
}

func NewServer(deps Deps, version string) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		deps:   deps,
		logger: logger,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "loadout",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
