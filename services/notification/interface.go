package notification

import "go.uber.org/zap"

// Presenter surfaces user-facing feedback the way the storefront's toast
// component does: one notification per settled action, success or error.
// Controllers depend on this seam so the concrete presentation layer stays
// swappable.
type Presenter interface {
	Success(title, message string)
	Error(title, message string)
}

// LogPresenter is the default Presenter. The gateway's HTTP responses are
// the real feedback channel; the log keeps a trace of what the visitor saw.
type LogPresenter struct {
	Logger *zap.Logger
}

func NewLogPresenter(logger *zap.Logger) *LogPresenter {
	return &LogPresenter{Logger: logger}
}

func (p *LogPresenter) Success(title, message string) {
	p.Logger.Info("toast",
		zap.String("title", title),
		zap.String("message", message))
}

func (p *LogPresenter) Error(title, message string) {
	p.Logger.Warn("toast",
		zap.String("title", title),
		zap.String("message", message))
}
