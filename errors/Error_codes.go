package errors

import "strconv"

// ERR is the numeric error code carried by every *Error.
type ERR int32

// Codes 0-9 are generic, 30-49 classify transaction rejections.
const (
	ERR_UNKNOWN          ERR = 0
	ERR_INVALID_ARGUMENT ERR = 1
	ERR_NOT_FOUND        ERR = 3
	ERR_PROCESSING       ERR = 4
	ERR_CONFIGURATION    ERR = 5
	ERR_ERROR            ERR = 9

	ERR_TX_INVALID              ERR = 31
	ERR_TX_INVALID_DOUBLE_SPEND ERR = 32
	ERR_TX_ALREADY_EXISTS       ERR = 33
	ERR_TX_UNKNOWN_INPUT        ERR = 34
	ERR_TX_BAD_SIGNATURE        ERR = 35
	ERR_TX_NEGATIVE_OUTPUT      ERR = 36
	ERR_TX_VALUE_DEFICIT        ERR = 37
)

var ERR_name = map[int32]string{
	0:  "UNKNOWN",
	1:  "INVALID_ARGUMENT",
	3:  "NOT_FOUND",
	4:  "PROCESSING",
	5:  "CONFIGURATION",
	9:  "ERROR",
	31: "TX_INVALID",
	32: "TX_INVALID_DOUBLE_SPEND",
	33: "TX_ALREADY_EXISTS",
	34: "TX_UNKNOWN_INPUT",
	35: "TX_BAD_SIGNATURE",
	36: "TX_NEGATIVE_OUTPUT",
	37: "TX_VALUE_DEFICIT",
}

var ERR_value = func() map[string]int32 {
	m := make(map[string]int32, len(ERR_name))
	for k, v := range ERR_name {
		m[v] = k
	}

	return m
}()

func (x ERR) String() string {
	if name, ok := ERR_name[int32(x)]; ok {
		return name
	}

	return strconv.Itoa(int(x))
}

// IsTxRejection reports whether the code classifies a rejected transaction.
func (x ERR) IsTxRejection() bool {
	return x >= ERR_TX_INVALID && x <= ERR_TX_VALUE_DEFICIT
}
