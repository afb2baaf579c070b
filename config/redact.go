package config

// KeysToRedact enumerates configuration keys that are never written to logs.
var KeysToRedact = []string{
	"server_keystore_password",
	"client_keystore_password",
}

// Redact returns a shallow copy of the configuration with sensitive keys
// removed. removing an absent key is a no-op. the input is never mutated.
func Redact(c Configuration) Configuration {
	result := make(Configuration, len(c))
	for k, v := range c {
		result[k] = v
	}

	for _, k := range KeysToRedact {
		delete(result, k)
	}

	return result
}
