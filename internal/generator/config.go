package generator

// Config drives the synthetic social graph generator.
type Config struct {
	NumUsers       int
	AvgFriendships int
	Seed           int64
}

// DefaultConfig returns the settings used by the degree-of-separation benchmark.
func DefaultConfig() Config {
	return Config{
		NumUsers:       1000,
		AvgFriendships: 5,
		Seed:           42,
	}
}
