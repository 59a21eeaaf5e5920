package settings

type UtxoPoolSettings struct {
	// Type selects the pool implementation: "map" or "swiss".
	Type            string
	InitialCapacity int
	// Logging wraps the pool in a decorator that debug-logs every mutation.
	Logging bool
}

type TxHandlerSettings struct {
	// Policy is the default selection policy: "firstvalid" or "maxfee".
	Policy         string
	LogRejections  bool
	MetricsEnabled bool
}

type ValidatorSettings struct {
	MetricsEnabled bool
}

type Settings struct {
	ClientName string
	LogLevel   string
	LoggerType string
	UtxoPool   UtxoPoolSettings
	TxHandler  TxHandlerSettings
	Validator  ValidatorSettings
}
