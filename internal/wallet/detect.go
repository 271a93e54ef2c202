package wallet

import (
	"go.uber.org/zap"
)

// Detection is the result of looking for a provider at load time
type Detection struct {
	Found     bool
	IsPhantom bool
	Provider  Provider
}

// Detect looks for a provider in env. A provider that does not identify as
// Phantom is still used; only the positive case is logged.
func Detect(env Environment, logger *zap.Logger) Detection {
	p, ok := env.Provider()
	if !ok {
		logger.Warn("Solana object not found! Get a Phantom wallet!")
		return Detection{}
	}

	d := Detection{Found: true, Provider: p, IsPhantom: p.IsPhantom()}
	if d.IsPhantom {
		logger.Info("Phantom wallet found!")
	}
	return d
}
