// internal/config/constants.go
package config

import "time"

// Base application details
const AppName = "groovy"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "groovy.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultTabWidth = 4
const SystemClipboard = true

// Autosave defaults
const DefaultAutosaveInterval = 30 // seconds
