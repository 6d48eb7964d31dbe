package cli

import (
	"errors"

	"github.com/google/uuid"

	"github.com/backmassage/labbench/internal/config"
	"github.com/backmassage/labbench/internal/logging"
	"github.com/backmassage/labbench/internal/model"
	"github.com/backmassage/labbench/internal/workspace"
)

// errNotConfigured is what the user sees when a workspace command runs
// before config.
var errNotConfigured = errors.New("you must run config first")

// session is an open workspace command run: the workspace, the built model,
// the effective argument set, and the per-command file logger.
type session struct {
	ws        *workspace.Workspace
	model     model.Model
	modelName string
	args      map[string]any
	runID     string
	wsLog     *logging.Logger
}

// openSession implements workspace-command argument layering: the command's
// defaults, overlaid with the saved [<name>] section of config.toml,
// overlaid with the flags explicitly set on this invocation. The effective
// set is persisted back to config.toml before the command runs, so the next
// plain invocation repeats the last run.
func openSession(cfg *config.Config, name string, defaults, changed map[string]any) (*session, error) {
	ws := workspace.New(cfg.WorkspaceDir)

	modelName, err := ws.ModelName()
	if err != nil {
		if errors.Is(err, workspace.ErrNotConfigured) {
			return nil, errNotConfigured
		}
		return nil, err
	}

	eff := make(map[string]any, len(defaults))
	for k, v := range defaults {
		eff[k] = v
	}
	saved, err := ws.Section(name)
	if err != nil {
		return nil, err
	}
	for k, v := range saved {
		eff[k] = v
	}
	for k, v := range changed {
		eff[k] = v
	}

	if err := ws.Update(name, eff); err != nil {
		return nil, err
	}
	if err := ws.Save(); err != nil {
		return nil, err
	}

	params, err := ws.ModelParams()
	if err != nil {
		return nil, err
	}
	builder, err := model.Lookup(modelName)
	if err != nil {
		return nil, err
	}
	m, err := builder.Build(params)
	if err != nil {
		return nil, err
	}

	wsLog, err := ws.Logger(name)
	if err != nil {
		return nil, err
	}

	return &session{
		ws:        ws,
		model:     m,
		modelName: modelName,
		args:      eff,
		runID:     uuid.NewString(),
		wsLog:     wsLog,
	}, nil
}

func (s *session) close() error {
	return s.ws.Close()
}
