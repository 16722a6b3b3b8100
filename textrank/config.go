package textrank

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/az-ai-labs/textrank/tagger"
)

// Default parameter values used by DefaultConfig.
const (
	DefaultWindow         = 2       // co-occurrence window, in tokens
	DefaultDamping        = 0.85    // PageRank damping factor
	DefaultEpsilon        = 1e-4    // convergence threshold on max score delta
	DefaultMaxIterations  = 100     // power-iteration cap
	DefaultMinTokenRunes  = 1       // shortest normalized token admitted as a vertex
	DefaultMinPhraseWords = 1       // shortest phrase kept by MultiKeywords
	DefaultMaxInputBytes  = 1 << 20 // 1 MiB input guard
)

// DefaultPOSTags admits nouns and adjectives, matched by tag prefix.
var DefaultPOSTags = []string{"NN", "JJ"}

// Weighting selects how repeated co-occurrences contribute to edge weight.
type Weighting string

const (
	// WeightCount makes the edge weight the number of co-occurrences.
	WeightCount Weighting = "count"
	// WeightBinary gives every edge weight 1.
	WeightBinary Weighting = "binary"
)

// Config parameterizes a single ranking call. Start from DefaultConfig and
// override fields; a zero Config does not validate.
type Config struct {
	// POSTags lists the accepted tag prefixes: "NN" admits NN, NNS, NNP, NNPS.
	POSTags []string `yaml:"pos_tags" json:"pos_tags" validate:"min=1,dive,required"`

	Window        int       `yaml:"window" json:"window" validate:"gt=0"`
	Damping       float64   `yaml:"damping" json:"damping" validate:"gt=0,lt=1"`
	Epsilon       float64   `yaml:"epsilon" json:"epsilon" validate:"gt=0"`
	MaxIterations int       `yaml:"max_iterations" json:"max_iterations" validate:"gt=0"`
	Weighting     Weighting `yaml:"weighting" json:"weighting" validate:"oneof=count binary"`

	// Stopwords replaces the built-in English list when non-nil.
	Stopwords        []string `yaml:"stopwords" json:"stopwords,omitempty" validate:"dive,required"`
	DisableStopwords bool     `yaml:"disable_stopwords" json:"disable_stopwords,omitempty"`

	MinTokenRunes  int `yaml:"min_token_runes" json:"min_token_runes" validate:"gte=1"`
	MinPhraseWords int `yaml:"min_phrase_words" json:"min_phrase_words" validate:"gte=1"`
	MaxInputBytes  int `yaml:"max_input_bytes" json:"max_input_bytes" validate:"gt=0"`

	// Tagger defaults to tagger.Rules when nil.
	Tagger tagger.Tagger `yaml:"-" json:"-" validate:"-"`
	// Logger receives debug records about ranking; nil disables logging.
	Logger *zap.Logger `yaml:"-" json:"-" validate:"-"`
}

// DefaultConfig returns the parameters of the reference TextRank setup:
// nouns and adjectives, window 2, damping 0.85.
func DefaultConfig() Config {
	return Config{
		POSTags:        append([]string(nil), DefaultPOSTags...),
		Window:         DefaultWindow,
		Damping:        DefaultDamping,
		Epsilon:        DefaultEpsilon,
		MaxIterations:  DefaultMaxIterations,
		Weighting:      WeightCount,
		MinTokenRunes:  DefaultMinTokenRunes,
		MinPhraseWords: DefaultMinPhraseWords,
		MaxInputBytes:  DefaultMaxInputBytes,
	}
}

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks every field and returns a *ConfigurationError for the
// first violation.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ConfigurationError{Field: "config", Reason: err.Error()}
	}
	fe := verrs[0]
	return &ConfigurationError{Field: fe.Field(), Reason: describeFieldError(fe)}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must contain at least %s entries", fe.Param())
	case "required":
		return "must not be empty"
	case "gt":
		return fmt.Sprintf("must be greater than %s, got %v", fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "lt":
		return fmt.Sprintf("must be less than %s, got %v", fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func (c Config) tagger() tagger.Tagger {
	if c.Tagger == nil {
		return tagger.NewRules()
	}
	return c.Tagger
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
