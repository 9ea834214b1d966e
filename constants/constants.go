package constants

import "os"

const (
	DefaultSampleRate = 22050
	DefaultWaveform   = "sin"
	DefaultRelease    = 200 // samples
	DefaultBPM        = 120
	DefaultUnit       = "s"
	DefaultVelocity   = 100
	DefaultTicks      = 960 // per quarter note
	DefaultOctave     = 4
	DefaultAddr       = ":8080"
	DefaultOutDir     = "./out"
	DefaultDebounceMs = 150
)

func GetOutDir() string {
	path := os.Getenv("MUNOTES_OUT_DIR")
	if path != "" {
		return path
	}
	return DefaultOutDir
}

func GetAddr() string {
	addr := os.Getenv("MUNOTES_ADDR")
	if addr != "" {
		return addr
	}
	return DefaultAddr
}

// GetConfigPath is empty when no config file was requested.
func GetConfigPath() string {
	return os.Getenv("MUNOTES_CONFIG")
}
