package config

const redacted = "***REDACTED***"

// SecretString keeps credentials out of logs and JSON output. Use Unmask
// where the raw value is needed.
type SecretString string

func (s SecretString) String() string {
	return redacted
}

func (s SecretString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// Unmask returns the plaintext value.
func (s SecretString) Unmask() string {
	return string(s)
}
