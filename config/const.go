package config

import "strings"

// AppVersion is the version of the application, stamped at build time via
// -ldflags for release binaries.
var AppVersion = "v0.0.0-dev"

// AppName is the name of the application.
const AppName = "memewall"

// SettingsFileName is the name of the optional settings file.
const SettingsFileName = "settings.json"

// HistoryFileName is the name of the shown-meme history file.
const HistoryFileName = "meme_history.json"

// WallpaperFileName is the name of the rendered wallpaper written to the
// system temp directory and handed to the desktop.
const WallpaperFileName = AppName + "_wallpaper.jpg"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"
