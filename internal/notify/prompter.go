package notify

import (
	"context"

	"github.com/wb-go/wbf/zlog"
)

// LogPrompter surfaces the permission request in the service log. A
// headless backend cannot pop a dialog, so the prompt tells the operator
// which knob to set.
type LogPrompter struct{}

func NewLogPrompter() *LogPrompter {
	return &LogPrompter{}
}

func (LogPrompter) Request(_ context.Context) {
	zlog.Logger.Info().Msg("notification permission undecided; set notifications.permission to granted or denied")
}
