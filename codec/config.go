package codec

import (
	"github.com/stewi1014/enginetypes/encio"
	"github.com/stewi1014/enginetypes/wire"
)

// Config defines configuration for Encoders and Decoders.
// Config must be the same for Encoder and Decoder.
type Config struct {
	// Source resolves the field table of every struct type encoded. It must be non-nil.
	// enginetypes.CodecConfig returns a Config using the engine type catalogue.
	Source wire.Source

	// SkipUnknown makes Decoders skip keys that the local table does not know, writing a warning to encio.Warnings,
	// so data from a newer revision of a type still decodes. Missing keys are always an error.
	SkipUnknown bool
}

func (c *Config) copyAndFill() (Config, error) {
	var config Config
	if c != nil {
		config = *c
	}

	if config.Source == nil {
		return config, encio.NewError(encio.ErrBadConfig, "Config.Source is nil", 1)
	}

	return config, nil
}
