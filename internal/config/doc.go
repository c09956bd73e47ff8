// Package config provides operator settings for netprobe.
//
// Settings are read from a YAML file in the platform config directory and
// control probe behavior: timeouts, the port scan batch size, the default
// scan range, and the mDNS browse service type. The file is read-only from
// netprobe's point of view; the application never writes it, and a missing
// file simply yields the built-in defaults.
//
// # Settings File Location
//
//   - Linux: $XDG_CONFIG_HOME/netprobe/settings.yaml or $HOME/.config/netprobe/settings.yaml
//   - macOS: $HOME/.config/netprobe/settings.yaml
//   - Windows: %LOCALAPPDATA%\netprobe\settings.yaml
//
// An explicit path (via the --config flag) takes precedence over the
// platform location.
package config
