package core

import (
	"fmt"

	"github.com/barysiuk/hookrow/internal/logging"
)

// InstallResult reports one saved hook from a wizard completion.
type InstallResult struct {
	Event   HookEvent
	Matcher string
	Command string
}

// InstallWizard builds, converts, and saves every hook a wizard config
// produces. Saves run strictly in sequence; on failure the error is returned
// with the results saved so far, and nothing is rolled back: the first N
// hooks of a danger-protection sequence stay installed.
func InstallWizard(cfg WizardConfig, p Platform, scope Scope, projectDir string) ([]InstallResult, error) {
	var results []InstallResult
	for _, cmd := range BuildCommands(cfg) {
		converted := ConvertToClaudeFormat(cmd, p)
		if err := SaveHook(scope, projectDir, cmd.Event, converted); err != nil {
			logging.Error("hook save failed",
				"wizard", string(cfg.Kind()), "event", string(cmd.Event), "error", err)
			return results, fmt.Errorf("saving %s hook: %w", cmd.Event, err)
		}
		logging.Info("hook saved",
			"wizard", string(cfg.Kind()), "event", string(cmd.Event), "scope", string(scope))
		results = append(results, InstallResult{
			Event:   cmd.Event,
			Matcher: converted.Matcher,
			Command: converted.Hooks[0].Command,
		})
	}
	return results, nil
}
