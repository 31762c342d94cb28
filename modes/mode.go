package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	// development mode reads no config files outside the working directory and never opens a REPL
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}
