package settings

func NewSettings() *Settings {
	return &Settings{
		ClientName: getString("clientName", "txhandler"),
		LogLevel:   getString("logLevel", "INFO"),
		LoggerType: getString("logger_type", "zerolog"),
		UtxoPool: UtxoPoolSettings{
			Type:            getString("utxopool_type", "map"),
			InitialCapacity: getInt("utxopool_initialCapacity", 1024),
			Logging:         getBool("utxopool_logging", false),
		},
		TxHandler: TxHandlerSettings{
			Policy:         getString("txhandler_policy", "firstvalid"),
			LogRejections:  getBool("txhandler_logRejections", true),
			MetricsEnabled: getBool("txhandler_metrics", true),
		},
		Validator: ValidatorSettings{
			MetricsEnabled: getBool("validator_metrics", true),
		},
	}
}
