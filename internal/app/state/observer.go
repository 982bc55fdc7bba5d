// internal/app/state/observer.go
package state

import "go.uber.org/zap"

// Observer receives notifications after a product-list load completes.
// Notification is best-effort: observers run after the snapshot has been
// applied, panics are swallowed, and nothing an observer does can affect
// the held data.
type Observer interface {
	// OnLoaded is called after a successful load with the number of
	// products in the new snapshot.
	OnLoaded(count int)

	// OnFailed is called after a failed load with the recorded message.
	OnFailed(msg string)
}

// LogObserver is an Observer that writes load outcomes to a zap logger.
// Bootstrap subscribes one so every refresh leaves a log trail.
type LogObserver struct {
	Log *zap.Logger
}

func (o LogObserver) OnLoaded(count int) {
	o.Log.Info("product list loaded", zap.Int("count", count))
}

func (o LogObserver) OnFailed(msg string) {
	o.Log.Warn("product list load failed", zap.String("error", msg))
}

func notify(observers []Observer, fn func(Observer)) {
	for _, o := range observers {
		func() {
			defer func() { _ = recover() }()
			fn(o)
		}()
	}
}
