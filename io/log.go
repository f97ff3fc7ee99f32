package io

import (
	"log/slog"

	"github.com/Aleod-m/PGE/core"
)

func logger() *slog.Logger {
	return core.Named("io")
}
