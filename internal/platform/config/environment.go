package config

// Environment is the APP_ENV setting. It only changes how logs are written.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

func (e Environment) IsProduction() bool {
	return e == Production
}

// ParseEnvironment maps APP_ENV onto a known Environment; anything it does
// not recognise, including different casing, is Development.
func ParseEnvironment(v string) Environment {
	switch e := Environment(v); e {
	case Production, Staging, Testing:
		return e
	default:
		return Development
	}
}
