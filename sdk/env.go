package sdk

import "os"

// Environment provides read access to environment variables.
type Environment interface {
	Lookup(key string) (string, bool)
}

type osEnvironment struct{}

func (osEnvironment) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// OSEnvironment returns the process environment.
func OSEnvironment() Environment { return osEnvironment{} }

// MapEnvironment is a fixed set of variables.
type MapEnvironment map[string]string

func (m MapEnvironment) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
