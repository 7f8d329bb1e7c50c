package sysprobe

import "errors"

// ErrUnsupportedPlatform is returned by the facade's capability getters when
// the resolved platform has no concrete implementation, including
// PlatformUnknown. The error the caller sees wraps this sentinel and names
// the detected platform, so unported environments are easy to identify from
// logs. The condition is never cached; every call fails the same way.
var ErrUnsupportedPlatform = errors.New("unsupported platform")
