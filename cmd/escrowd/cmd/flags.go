package cmd

const (
	FlagHome      = "home"
	FlagChainID   = "chain-id"
	FlagDBBackend = "db_backend"
	FlagLogLevel  = "log_level"
	FlagLogFormat = "log_format"
	FlagLogColor  = "log_color"
	FlagOutput    = "output"

	FlagFrom      = "from"
	FlagSeller    = "seller"
	FlagBuyer     = "buyer"
	FlagCondition = "condition"
	FlagTimeout   = "timeout"
	FlagAmount    = "amount"
	FlagGenesis   = "genesis"

	EnvPrefix = "ESCROW"

	LogFormatJSON  = "json"
	LogFormatPlain = "plain"

	OutputJSON = "json"
	OutputYAML = "yaml"
)
