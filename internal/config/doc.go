// Package config loads passcheck configuration from local and global YAML
// files. It only reads files; the CLI applies precedence between flags, the
// local file and the global one.
package config
