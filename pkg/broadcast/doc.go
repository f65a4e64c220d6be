// Package broadcast provides a small type-safe in-process fan-out used to
// publish notification lifecycle and configuration-change events to any
// number of observers.
//
// Delivery is non-blocking: a subscriber that stops draining its channel has
// messages dropped and is eventually unsubscribed, so a slow observer can
// never stall the notification engine.
//
// # Basic Usage
//
//	b := broadcast.NewMemoryBroadcaster[string](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	go func() {
//	    for msg := range sub.Receive(ctx) {
//	        fmt.Println(msg.Data)
//	    }
//	}()
//
//	_ = b.Broadcast(ctx, broadcast.Message[string]{Data: "shown"})
package broadcast
