package script

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	engineTypes "github.com/robbyt/go-polybridge/engines/types"
	"github.com/robbyt/go-polybridge/internal/helpers"
	"github.com/robbyt/go-polybridge/platform/data"
	"github.com/robbyt/go-polybridge/platform/script/loader"
)

const checksumLength = 12

// ExecutableUnit is a compiled script paired with the provider of its ctx
// data. Engines evaluate a unit any number of times without recompiling.
type ExecutableUnit struct {
	// ID names the unit in logs and results: the caller's version ID, or a
	// short hash of the source.
	ID string

	Content      ExecutableContent
	DataProvider data.Provider

	// Source is where the script was read from, nil when the loader has no URL.
	Source     *url.URL
	CompiledAt time.Time
}

// NewExecutableUnit compiles the script that ldr serves.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	ldr loader.Loader,
	compiler Compiler,
	provider data.Provider,
) (*ExecutableUnit, error) {
	switch {
	case compiler == nil:
		return nil, ErrCompilerNil
	case ldr == nil:
		return nil, ErrLoaderNil
	}

	r, err := ldr.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}
	content, err := compiler.Compile(r)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.ShortHash([]byte(content.GetSource()), checksumLength)
	}

	_, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")
	logger.Debug("compiled", "ID", versionID, "engine", content.GetEngineType(), "compiler", compiler)

	return &ExecutableUnit{
		ID:           versionID,
		Content:      content,
		DataProvider: provider,
		Source:       ldr.GetSourceURL(),
		CompiledAt:   time.Now(),
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, Engine: %s, Source: %v}", exe.ID, exe.GetEngineType(), exe.Source)
}

func (exe *ExecutableUnit) GetID() string { return exe.ID }

func (exe *ExecutableUnit) GetContent() ExecutableContent { return exe.Content }

func (exe *ExecutableUnit) GetDataProvider() data.Provider { return exe.DataProvider }

// GetEngineType reports the engine the content was compiled for, or "" when
// there is no content.
func (exe *ExecutableUnit) GetEngineType() engineTypes.Type {
	if exe.Content == nil {
		return ""
	}
	return exe.Content.GetEngineType()
}
