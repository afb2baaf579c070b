package commandutils

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"

	"github.com/james-lawrence/keystoregen/messages"
)

// BootstrapSignals exits silently when a termination signal arrives before
// argument parsing completes. the returned function releases the trap so the
// graceful handler can take over.
func BootstrapSignals(sigs ...os.Signal) func() {
	signals := make(chan os.Signal, 1)
	released := make(chan struct{})
	signal.Notify(signals, sigs...)

	go func() {
		select {
		case s := <-signals:
			Debugln(messages.Debug(901, s))
			os.Exit(0)
		case <-released:
		}
	}()

	return func() {
		signal.Stop(signals)
		close(released)
	}
}

// GracefulSignals logs an exit message embedding the parsed arguments and
// terminates cleanly when a termination signal arrives. the snapshot is
// copied at registration time.
func GracefulSignals(snapshot map[string]string, sigs ...os.Signal) {
	copied := make(map[string]string, len(snapshot))
	for k, v := range snapshot {
		copied[k] = v
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, sigs...)

	go func() {
		s := <-signals

		encoded, err := json.Marshal(copied)
		if err != nil {
			encoded = []byte("{}")
		}

		log.Println(messages.Info(298, string(encoded)))
		Debugln(messages.Debug(901, s))
		os.Exit(0)
	}()
}
