// Package keystoregen holds program metadata for the keystore provisioning utility.
package keystoregen

// ProductID tags every log line emitted by this program, making them greppable
// across an installation's aggregated logs.
const ProductID = "5032"

// program metadata reported by the version subcommand and embedded into
// resolved configurations.
const (
	Version = "1.0.0"
	Updated = "2024-11-05"
)

// DefaultEtcDir is where generated key material is written.
const DefaultEtcDir = "/etc/opt/keystoregen"

// DefaultKeystorePassword protects generated keystores when no override is
// provided through the environment.
const DefaultKeystorePassword = "change-it"

// names of the available subcommands.
const (
	SubcommandProvisionCloud = "provision-cloud"
	SubcommandSleep          = "sleep"
	SubcommandVersion        = "version"
	SubcommandSelfTest       = "self-test"
)
