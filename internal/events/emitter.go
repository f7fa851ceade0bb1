package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit publishes an event. It is a no-op until EnableRuntimeEmitter or
// SetCustomEmitter is called.
var Emit = func(ctx context.Context, name string, evt GenerationEvent) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt GenerationEvent) {
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt GenerationEvent)) {
	if f == nil {
		Emit = func(context.Context, string, GenerationEvent) {}
		return
	}
	Emit = f
}
