package project

// Placeholder tokens. The project generator replaces them in place when the
// template is copied, so they must stay literal.
const (
	NamePlaceholder     = "{{PROJECT_NAME}}"
	ProblemPlaceholder  = "{{PROJECT_PROBLEM}}"
	PersonasPlaceholder = "{{USER_PERSONAS}}"
)

// Metadata is the project description echoed by the service. It is resolved
// once at startup and never mutated.
type Metadata struct {
	Name     string
	Problem  string
	Personas string
}

// New bundles name with the problem and persona literals.
func New(name string) Metadata {
	return Metadata{
		Name:     name,
		Problem:  ProblemPlaceholder,
		Personas: PersonasPlaceholder,
	}
}

func (m Metadata) Welcome() string {
	return "Welcome to " + m.Name
}
