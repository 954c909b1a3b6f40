// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package telemetry emits view/swipe/upvote/nav events fire-and-forget.

	events := telemetry.NewEmitter(store, userHash)
	events.Emit(models.EventView, nil, map[string]any{"count": n})
	...
	events.Close() // drain before exit

Emit never blocks and never returns an error; a failed insert is a
debug log line and nothing more.
*/
package telemetry
