package main

import "time"

type Config struct {
	CommandPrefix            string        `env:"COMMAND_PREFIX,default=!" validate:"required"`
	PublicReplies            bool          `env:"PUBLIC_REPLIES,default=true"`
	EnableInfoCommands       bool          `env:"ENABLE_INFO_COMMANDS,default=true"`
	EnableOfflineMessenger   bool          `env:"ENABLE_OFFLINE_MESSENGER,default=true"`
	NotifySenderOnDelivery   bool          `env:"NOTIFY_SENDER_ON_DELIVERY,default=true"`
	LeakGuard                bool          `env:"LEAK_GUARD,default=true"`
	StripStarscriptBraces    bool          `env:"STRIP_STARSCRIPT_BRACES,default=true"`
	BlockDangerousStarscript bool          `env:"BLOCK_DANGEROUS_STARSCRIPT,default=true"`
	BlockRawXYZPatterns      bool          `env:"BLOCK_RAW_XYZ_PATTERNS,default=true"`
	PresenceInterval         time.Duration `env:"PRESENCE_INTERVAL,default=1s" validate:"gt=0"`
	TelemetryInterval        time.Duration `env:"TELEMETRY_INTERVAL,default=30s" validate:"gt=0"`
	BufferSize               int           `env:"BUFFER_SIZE,default=64" validate:"gt=0"`
	BadgerFilepath           string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel                 string        `env:"LOG_LEVEL,default=INFO"`
	Roster                   string        `env:"ROSTER"`
	WorldName                string        `env:"WORLD_NAME,default=overworld"`
	ConsolePrivateDelivery   bool          `env:"CONSOLE_PRIVATE_DELIVERY,default=true"`
	Colours                  bool          `env:"COLOURS,default=true"`
}
