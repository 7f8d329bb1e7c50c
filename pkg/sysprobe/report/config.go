package report

import (
	"strconv"
	"strings"
)

// Config maps dotted inclusion keys (e.g. "hardware.processor") to boolean
// flags. A projection call consults the config for the keys it owns and
// forwards the whole config, unchanged, to every child entity it renders, so
// nested keys travel verbatim to the entity that understands them.
//
// A key that is not present means "exclude". Inclusion is additive and
// opt-in; an empty Config projects an empty document.
type Config map[string]bool

// Bool returns the flag stored under key, or false when the key is absent.
func (c Config) Bool(key string) bool {
	if c == nil {
		return false
	}
	return c[key]
}

// With returns the config with key set to on. The receiver is modified and
// returned for chaining; a nil receiver allocates.
func (c Config) With(key string, on bool) Config {
	if c == nil {
		c = Config{}
	}
	c[key] = on
	return c
}

// Enable builds a config with every named key switched on. Enabling a dotted
// key also enables its ancestors, so Enable("hardware.processor") produces
// {"hardware": true, "hardware.processor": true}; without the parent flag the
// child section would never be reached.
func Enable(keys ...string) Config {
	c := Config{}
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		c[key] = true
		for {
			idx := strings.LastIndex(key, ".")
			if idx < 0 {
				break
			}
			key = key[:idx]
			if _, explicit := c[key]; !explicit {
				c[key] = true
			}
		}
	}
	return c
}

// FromMap coerces an arbitrary key/value mapping (for example a koanf
// snapshot of a config file) into a Config. Proper booleans are taken as-is
// and strings are parsed with strconv.ParseBool; anything malformed or of an
// unexpected type counts as false. Inclusion fails open toward exclusion, not
// toward crashing.
func FromMap(m map[string]any) Config {
	c := Config{}
	for key, raw := range m {
		switch v := raw.(type) {
		case bool:
			c[key] = v
		case string:
			b, err := strconv.ParseBool(v)
			c[key] = err == nil && b
		default:
			c[key] = false
		}
	}
	return c
}
