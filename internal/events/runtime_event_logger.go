package events

import (
	"context"
	"encoding/json"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func logRuntimeEvent(ctx context.Context, name string, event GenerationEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		runtime.LogError(ctx, "events: failed to marshal generation event: "+err.Error())
		return
	}

	payload := name + " " + string(data)

	switch event.Type {
	case EventError:
		runtime.LogError(ctx, payload)
	case EventWarn:
		runtime.LogWarning(ctx, payload)
	case EventInfo:
		runtime.LogDebug(ctx, payload)
	default:
		runtime.LogInfo(ctx, payload)
	}
}
