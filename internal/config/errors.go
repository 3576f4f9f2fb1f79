package config

import "github.com/ayoisaiah/slumber/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errViperSetup = &apperr.Error{
		Message: "viper setup failed",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config failed",
	}

	errInvalidAt = &apperr.Error{
		Message: "invalid --at time",
	}

	errNoMoods = &apperr.Error{
		Message: "the mood catalog cannot be empty",
	}

	errInvalidMood = &apperr.Error{
		Message: "mood %d must have an emoji and a label",
	}

	errDuplicateMood = &apperr.Error{
		Message: "duplicate mood label: %s",
	}

	errInvalidHistoryLimit = &apperr.Error{
		Message: "history limit must be between %d and %d sessions",
	}

	errUnknownScorer = &apperr.Error{
		Message: "unknown quality scorer: %s (must be random or fixed)",
	}

	errInvalidFixedQuality = &apperr.Error{
		Message: "fixed quality must be between %d and %d",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s (must be bolt or sqlite)",
	}
)
