package translate

import "log/slog"

// Builder can build translators.
type Builder struct {
	uid      string
	rewriter Rewriter
	logger   *slog.Logger
}

// NewBuilder returns a builder with the default settings.
func NewBuilder() Builder {
	return Builder{
		uid:      DefaultUIDPlaceholder,
		rewriter: RewriteScan,
	}
}

// WithUIDPlaceholder sets the text `%=` is rewritten to.
func (b Builder) WithUIDPlaceholder(uid string) Builder {
	b.uid = uid
	return b
}

// WithRewriter sets the placeholder rewriting strategy.
func (b Builder) WithRewriter(r Rewriter) Builder {
	b.rewriter = r
	return b
}

// WithLogger sets the logger trace output goes to.
func (b Builder) WithLogger(logger *slog.Logger) Builder {
	b.logger = logger
	return b
}

// Build creates a translator.
func (b Builder) Build() *Translator {
	t := &Translator{
		uid:      b.uid,
		rewriter: b.rewriter,
		logger:   b.logger,
	}

	if t.uid == "" {
		t.uid = DefaultUIDPlaceholder
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}

	return t
}
