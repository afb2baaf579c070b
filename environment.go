package keystoregen

// defines available environment variables for configuration
const (
	EnvSubcommand             = "KEYSTOREGEN_SUBCOMMAND"                           // selects the subcommand when no cli arguments are provided.
	EnvDebug                  = "KEYSTOREGEN_DEBUG"                                // enable debug output. truthy values: true, 1, t, y, yes (case insensitive).
	EnvDelayInSeconds         = "KEYSTOREGEN_DELAY_IN_SECONDS"                     // seconds to wait before doing any work.
	EnvEtcDir                 = "KEYSTOREGEN_ETC_DIR"                              // directory where generated key material is written.
	EnvSleepTimeInSeconds     = "KEYSTOREGEN_SLEEP_TIME_IN_SECONDS"                // sleep duration for the sleep subcommand. 0 sleeps forever.
	EnvStackName              = "KEYSTOREGEN_STACK_NAME"                           // cloudformation stack name used to derive the secret name.
	EnvLogLevel               = "KEYSTOREGEN_LOG_LEVEL"                            // set to debug to enable debug output; other values leave the default output unchanged.
	EnvDockerLaunched         = "KEYSTOREGEN_DOCKER_LAUNCHED"                      // set to any value when launched by container orchestration.
	EnvServerKeystorePassword = "KEYSTOREGEN_API_SERVER_KEY_STORE_PASSWORD"        // password for the generated server keystore.
	EnvClientKeystorePassword = "KEYSTOREGEN_API_SERVER_CLIENT_KEY_STORE_PASSWORD" // password for the generated client keystore.
)
