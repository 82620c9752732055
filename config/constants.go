package config

import (
	"github.com/stagekit/stagefs"
	"github.com/stagekit/stagefs/util"
)

// Bytes per MB
const MB = 1024 * 1024

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultMaxPayloadSize caps individual imported file payloads
	DefaultMaxPayloadSize = int64(50 * MB)

	// DefaultCompress enables deflate compression for archive entries
	DefaultCompress = true

	// DefaultLogLvl is the default internal log level
	DefaultLogLvl = util.InfoLevel
)

// DefaultPermissions is applied to hydrated records that carry no
// permissions value; the backend defaults the same way.
const DefaultPermissions = stagefs.ReadOnly

// Verbosity values accepted in config files, mapped onto internal log
// levels by NewConfig
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)
