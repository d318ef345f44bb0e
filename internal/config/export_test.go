package config

import (
	"io"
	"log/slog"
)

func (c *Config) NewLoggerForTest(w io.Writer) *slog.Logger { return c.newLogger(w) }
