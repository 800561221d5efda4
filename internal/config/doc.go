// Package config persists kbridge's local run configurations as a
// YAML file under the user's config directory. The connection wizard
// reads them to offer a configuration to launch alongside a
// connection; it never edits existing entries.
package config
