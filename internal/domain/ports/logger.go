package ports

// Logger é o log estruturado usado por serviços e middlewares.
// args são pares chave/valor, como em log/slog: "user_id", 3, "error", err.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With devolve um Logger que acrescenta args a toda entrada
	With(args ...any) Logger
}
