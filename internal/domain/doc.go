// Package domain defines the core types for phantomid.
//
// # Core Types
//
// DeviceType names one of the fixed device categories (windows10, macos,
// linux, iphone, android, iot).
//
// Profile is the static record for a category: initial IP TTL, TCP window
// size, browser user agent and a human-readable OS label.
//
// Phantom is one generated identity. It carries every Profile field plus a
// randomized MAC address and hostname, and is always tagged Phantom=true.
//
// # Design Principles
//
// - Immutable value objects
// - No I/O and no external dependencies
package domain
