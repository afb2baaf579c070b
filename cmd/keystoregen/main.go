// Command keystoregen generates the TLS keystores and trust stores used to
// secure the api server, optionally publishing the client keystore to the
// cloud secret store. invoked once during installation of a host system.
package main

import (
	"context"
	"log"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/james-lawrence/keystoregen"
	"github.com/james-lawrence/keystoregen/cmd/commandutils"
	"github.com/james-lawrence/keystoregen/cmd/keystoregen/cmdopts"
	"github.com/james-lawrence/keystoregen/internal/debugx"
	"github.com/james-lawrence/keystoregen/internal/envx"
	"github.com/james-lawrence/keystoregen/internal/errorsx"
	"github.com/james-lawrence/keystoregen/messages"
)

func main() {
	var shellCli struct {
		cmdopts.Global
		ProvisionCloud cmdProvisionCloud `cmd:"" name:"provision-cloud" help:"generate keystores and upload the client keystore to the cloud secret store"`
		Sleep          cmdSleep          `cmd:"" help:"do nothing but sleep. for container testing"`
		Version        cmdVersion        `cmd:"" help:"display versioning information"`
		SelfTest       cmdSelfTest       `cmd:"" name:"self-test" help:"resolve configuration and log entry/exit without doing any work"`
	}

	shellCli.Context, shellCli.Shutdown = context.WithCancel(context.Background())
	shellCli.Cleanup = &sync.WaitGroup{}

	commandutils.LogEnv(0)
	go debugx.DumpOnSignal(shellCli.Context, syscall.SIGUSR2)
	release := commandutils.BootstrapSignals(os.Interrupt, syscall.SIGTERM)

	parser := kong.Must(
		&shellCli,
		kong.Name("keystoregen"),
		kong.Description("generate TLS key material for the api server and publish the client keystore"),
		kong.Vars{
			"default_etc_dir": keystoregen.DefaultEtcDir,
		},
		kong.UsageOnError(),
		kong.Bind(&shellCli.Global),
	)

	// handlers reachable through the environment when no cli arguments are
	// provided. built once at startup, one handler per subcommand name.
	fallbacks := map[string]func(*cmdopts.Global) error{
		keystoregen.SubcommandProvisionCloud: cmdProvisionCloud{}.Run,
		keystoregen.SubcommandSleep:          cmdSleep{}.Run,
		keystoregen.SubcommandVersion:        cmdVersion{}.Run,
		keystoregen.SubcommandSelfTest:       cmdSelfTest{}.Run,
	}

	if len(os.Args) < 2 {
		runFromEnvironment(parser, &shellCli.Global, fallbacks, release)
		return
	}

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// a discoverability aid, not a failure.
		log.Println(messages.Warning(596, strings.Join(os.Args[1:], " ")))
		printUsage(parser)
		os.Exit(0)
	}

	release()
	commandutils.GracefulSignals(map[string]string{
		"subcommand": ctx.Command(),
		"args":       strings.Join(os.Args[1:], " "),
	}, os.Interrupt, syscall.SIGTERM)

	if err = ctx.Run(); err != nil {
		shellCli.Shutdown()
		commandutils.Fatal(err)
	}

	shellCli.Shutdown()
	shellCli.Cleanup.Wait()
}

// runFromEnvironment selects the handler named by the environment. without a
// name it prints usage, falling back to the sleep handler when launched by
// container orchestration so the container stays healthy.
func runFromEnvironment(parser *kong.Kong, global *cmdopts.Global, fallbacks map[string]func(*cmdopts.Global) error, release func()) {
	name := envx.String("", keystoregen.EnvSubcommand)

	if name == "" {
		printUsage(parser)

		if envx.String("", keystoregen.EnvDockerLaunched) == "" {
			os.Exit(0)
		}

		name = keystoregen.SubcommandSleep
	}

	run, ok := fallbacks[name]
	if !ok {
		log.Println(messages.Warning(596, name))
		printUsage(parser)
		os.Exit(0)
	}

	release()
	commandutils.GracefulSignals(map[string]string{"subcommand": name}, os.Interrupt, syscall.SIGTERM)

	if err := run(global); err != nil {
		commandutils.Fatal(err)
	}
}

func printUsage(parser *kong.Kong) {
	ctx, err := kong.Trace(parser, nil)
	if err != nil {
		return
	}

	errorsx.MaybeLog(ctx.PrintUsage(false))
}
