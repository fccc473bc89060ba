package exc

const (
	CodeUnknownFatal    = "R0000"
	CodeInvalidCount    = "R0001"
	CodeInvalidPair     = "R0002"
	CodeUnknownStrategy = "R0003"
	CodeUnknownFormat   = "R0004"
	CodeInvalidFlags    = "R0005"
	CodeUnknownParity   = "R0006"
)

var (
	// Bad flag values are collected so that every problem is shown at once.
	defaultNonFatal = map[string]bool{
		CodeInvalidCount:    true,
		CodeInvalidPair:     true,
		CodeUnknownStrategy: true,
		CodeUnknownFormat:   true,
		CodeUnknownParity:   true,
	}
)
