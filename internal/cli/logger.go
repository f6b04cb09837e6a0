package cli

import (
	"github.com/rs/zerolog"
)

// zerologAdapter bridges the engine's Logger interface onto zerolog so the
// engine stays free of logging dependencies.
type zerologAdapter struct {
	log zerolog.Logger
}

func (z zerologAdapter) Debugf(format string, args ...any) { z.log.Debug().Msgf(format, args...) }
func (z zerologAdapter) Infof(format string, args ...any)  { z.log.Info().Msgf(format, args...) }
func (z zerologAdapter) Warnf(format string, args ...any)  { z.log.Warn().Msgf(format, args...) }
func (z zerologAdapter) Errorf(format string, args ...any) { z.log.Error().Msgf(format, args...) }
