package test

import "go.uber.org/fx"

// LifecycleRecorder collects appended hooks so tests can run them directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook without scheduling it.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever a shutdown is requested.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown notifies the test and always succeeds.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
