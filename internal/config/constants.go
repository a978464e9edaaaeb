package config

import "time"

// Base application details
const AppName = "composer"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "composer.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editing defaults
const DefaultTabWidth = 4 // Spaces per indent level
const DefaultScrollOff = 3
const DefaultMaxHistory = 100
const SystemClipboard = true
