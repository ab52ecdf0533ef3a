// Package log builds slog loggers that mask secrets before they are written.
//
// Any attribute whose key looks like it holds a credential (password,
// passphrase, secret, token) is replaced with MaskValue, so a password handed
// to the logger by mistake never reaches the output.
//
//	logger := log.New(os.Stderr, verbose)
//	logger.Debug("wordlist loaded", "path", p, "words", n)
package log
