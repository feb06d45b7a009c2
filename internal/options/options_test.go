package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	method string
	level  int
	calls  []string
}

func withMethod(name string) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		if name == "" {
			return errors.New("method must not be empty")
		}
		c.method = name
		c.calls = append(c.calls, "method")

		return nil
	})
}

func withLevel(level int) Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.level = level
		c.calls = append(c.calls, "level")
	})
}

func TestApply(t *testing.T) {
	cfg := &codecConfig{}

	err := Apply(cfg, withMethod("absmax"), withLevel(3))

	require.NoError(t, err)
	require.Equal(t, "absmax", cfg.method)
	require.Equal(t, 3, cfg.level)
	require.Equal(t, []string{"method", "level"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &codecConfig{}

	err := Apply(cfg, withLevel(1), withMethod(""), withLevel(2))

	require.Error(t, err)
	require.Equal(t, 1, cfg.level)
	require.Equal(t, []string{"level"}, cfg.calls)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &codecConfig{level: 9}

	require.NoError(t, Apply(cfg))
	require.Equal(t, 9, cfg.level)
}
