package validator

// ErrorCodePrefix namespaces every decimal number error code.
const ErrorCodePrefix = "doubleNumber"

// Error codes are persisted by consumers and must never change.
const (
	CodeNotValid          = ErrorCodePrefix + ".e001"
	CodeExceededMaxDigits = ErrorCodePrefix + ".e002"
	CodeExceededMaxPlaces = ErrorCodePrefix + ".e003"
)

// ErrorDescriptor pairs a stable error code with its message template.
type ErrorDescriptor struct {
	code    string
	message string
}

func (d ErrorDescriptor) Code() string    { return d.code }
func (d ErrorDescriptor) Message() string { return d.message }

var (
	NotValid = ErrorDescriptor{
		code:    CodeNotValid,
		message: "The value is not a valid decimal number.",
	}
	ExceededMaxDigits = ErrorDescriptor{
		code:    CodeExceededMaxDigits,
		message: "The value exceeded maximum number of digits.",
	}
	ExceededMaxPlaces = ErrorDescriptor{
		code:    CodeExceededMaxPlaces,
		message: "The value exceeded maximum number of decimal places.",
	}
)

// Descriptors returns a copy of the decimal number catalog ordered by code.
func Descriptors() []ErrorDescriptor {
	return []ErrorDescriptor{NotValid, ExceededMaxDigits, ExceededMaxPlaces}
}

// LookupDescriptor finds the descriptor registered for code.
func LookupDescriptor(code string) (ErrorDescriptor, bool) {
	for _, d := range Descriptors() {
		if d.code == code {
			return d, true
		}
	}
	return ErrorDescriptor{}, false
}
