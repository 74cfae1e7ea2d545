package als

// Aliases exposing private kernels to the package's white-box tests.
var (
	Gram          = gram
	AddCorrection = addCorrection
	SolveSPD      = solveSPD
)
