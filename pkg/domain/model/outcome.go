package model

// Outcome classifies the terminal state of one repository API operation.
// Exactly one Outcome is attached to every OperationResult.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"

	// OutcomeObjectNull means the response decoded to a JSON null object.
	OutcomeObjectNull Outcome = "object-null"

	// OutcomeUnsuccessfulRequest means the server answered with a non-2xx
	// status and the body could not be decoded.
	OutcomeUnsuccessfulRequest Outcome = "unsuccessful-request"

	// Transport faults
	OutcomeBadURI                Outcome = "bad-uri"
	OutcomeURINotAbsolute        Outcome = "uri-not-absolute"
	OutcomeTimedOut              Outcome = "timed-out"
	OutcomeNetworkError          Outcome = "network-error"
	OutcomeUnknownTransportFault Outcome = "unknown-transport-fault"

	// Decode faults
	OutcomeJSONStringNull        Outcome = "json-string-null"
	OutcomeInvalidJSON           Outcome = "invalid-json"
	OutcomeUnsupportedDecodeType Outcome = "unsupported-decode-type"
	OutcomeUnknownDecodeFault    Outcome = "unknown-decode-fault"
)

// AllOutcomes lists every Outcome in declaration order.
var AllOutcomes = []Outcome{
	OutcomeSuccess,
	OutcomeObjectNull,
	OutcomeUnsuccessfulRequest,
	OutcomeBadURI,
	OutcomeURINotAbsolute,
	OutcomeTimedOut,
	OutcomeNetworkError,
	OutcomeUnknownTransportFault,
	OutcomeJSONStringNull,
	OutcomeInvalidJSON,
	OutcomeUnsupportedDecodeType,
	OutcomeUnknownDecodeFault,
}

// String returns the string representation of Outcome.
func (o Outcome) String() string {
	return string(o)
}

// IsSuccess reports whether the outcome is OutcomeSuccess.
func (o Outcome) IsSuccess() bool {
	return o == OutcomeSuccess
}

// IsValid checks whether the Outcome is one of the predefined values.
func (o Outcome) IsValid() bool {
	for _, v := range AllOutcomes {
		if o == v {
			return true
		}
	}
	return false
}

// IsTransportFault reports whether the outcome was produced by the
// transport layer before any body was read.
func (o Outcome) IsTransportFault() bool {
	switch o {
	case OutcomeBadURI, OutcomeURINotAbsolute, OutcomeTimedOut,
		OutcomeNetworkError, OutcomeUnknownTransportFault:
		return true
	default:
		return false
	}
}

// IsDecodeFault reports whether the outcome was produced while decoding
// a response body.
func (o Outcome) IsDecodeFault() bool {
	switch o {
	case OutcomeObjectNull, OutcomeJSONStringNull, OutcomeInvalidJSON,
		OutcomeUnsupportedDecodeType, OutcomeUnknownDecodeFault:
		return true
	default:
		return false
	}
}
