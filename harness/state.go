package harness

//go:generate go tool stringer -type=State

// State is the progress of a test run.
type State uint8

const (
	Invoked  State = iota // Run was called
	Running               // the program is executing
	Reported              // the verdict is written
	Terminal              // the success bit was read back, the run is over
)
