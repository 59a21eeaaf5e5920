package errors

var (
	ErrUnknown              = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument      = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrNotFound             = New(ERR_NOT_FOUND, "not found")
	ErrProcessing           = New(ERR_PROCESSING, "error processing")
	ErrConfiguration        = New(ERR_CONFIGURATION, "configuration error")
	ErrError                = New(ERR_ERROR, "generic error")
	ErrTxInvalid            = New(ERR_TX_INVALID, "tx invalid")
	ErrTxInvalidDoubleSpend = New(ERR_TX_INVALID_DOUBLE_SPEND, "tx invalid double spend")
	ErrTxAlreadyExists      = New(ERR_TX_ALREADY_EXISTS, "tx already exists")
	ErrTxUnknownInput       = New(ERR_TX_UNKNOWN_INPUT, "tx spends unknown or spent output")
	ErrTxBadSignature       = New(ERR_TX_BAD_SIGNATURE, "tx input signature invalid")
	ErrTxNegativeOutput     = New(ERR_TX_NEGATIVE_OUTPUT, "tx output value negative")
	ErrTxValueDeficit       = New(ERR_TX_VALUE_DEFICIT, "tx outputs exceed inputs")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}
func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewNotFoundError(message string, params ...interface{}) error {
	return New(ERR_NOT_FOUND, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}
func NewError(message string, params ...interface{}) error {
	return New(ERR_ERROR, message, params...)
}
func NewTxInvalidError(message string, params ...interface{}) error {
	return New(ERR_TX_INVALID, message, params...)
}
func NewTxInvalidDoubleSpendError(message string, params ...interface{}) error {
	return New(ERR_TX_INVALID_DOUBLE_SPEND, message, params...)
}
func NewTxAlreadyExistsError(message string, params ...interface{}) error {
	return New(ERR_TX_ALREADY_EXISTS, message, params...)
}
func NewTxUnknownInputError(message string, params ...interface{}) error {
	return New(ERR_TX_UNKNOWN_INPUT, message, params...)
}
func NewTxBadSignatureError(message string, params ...interface{}) error {
	return New(ERR_TX_BAD_SIGNATURE, message, params...)
}
func NewTxNegativeOutputError(message string, params ...interface{}) error {
	return New(ERR_TX_NEGATIVE_OUTPUT, message, params...)
}
func NewTxValueDeficitError(message string, params ...interface{}) error {
	return New(ERR_TX_VALUE_DEFICIT, message, params...)
}
