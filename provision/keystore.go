// Package provision drives the external keytool binary to generate the key
// material used to secure the api server, and publishes the client keystore
// to the cloud secret store.
package provision

import (
	"context"
	"encoding/base64"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/james-lawrence/keystoregen"
	"github.com/james-lawrence/keystoregen/config"
	"github.com/james-lawrence/keystoregen/internal/envx"
	"github.com/james-lawrence/keystoregen/messages"
	"github.com/pkg/errors"
)

// names of the generated artifacts within the etc directory.
const (
	ServerKeystore   = "sz-api-server-store.p12"
	ClientKeystore   = "my-client-key-store.p12"
	ClientCert       = "my-client.cer"
	ClientTruststore = "my-client-trust-store.p12"
)

const (
	serverAlias = "sz-api-server"
	clientAlias = "my-client"
	dname       = "CN=Unknown, OU=Unknown, O=Unknown, L=Unknown, ST=Unknown, C=Unknown"
)

// Available returns true when the keytool binary is on the path.
func Available() bool {
	_, err := exec.LookPath("keytool")
	return err == nil
}

// commands builds the four keytool invocations in their fixed order:
// generate the server keystore, generate the client keystore, export the
// client certificate, import it into a fresh client trust store. every store
// is PKCS12 with an RSA 2048 key valid for two years.
func commands(etcdir, serverpass, clientpass string) [][]string {
	return [][]string{
		{
			"-genkey", "-alias", serverAlias,
			"-keystore", filepath.Join(etcdir, ServerKeystore),
			"-storetype", "PKCS12", "-keyalg", "RSA",
			"-storepass", serverpass,
			"-validity", "730", "-keysize", "2048",
			"-dname", dname,
		},
		{
			"-genkey", "-alias", clientAlias,
			"-keystore", filepath.Join(etcdir, ClientKeystore),
			"-storetype", "PKCS12", "-keyalg", "RSA",
			"-storepass", clientpass,
			"-validity", "730", "-keysize", "2048",
			"-dname", dname,
		},
		{
			"-export",
			"-keystore", filepath.Join(etcdir, ClientKeystore),
			"-storepass", clientpass,
			"-storetype", "PKCS12", "-alias", clientAlias,
			"-file", filepath.Join(etcdir, ClientCert),
		},
		{
			"-import",
			"-file", filepath.Join(etcdir, ClientCert),
			"-alias", clientAlias,
			"-keystore", filepath.Join(etcdir, ClientTruststore),
			"-storetype", "PKCS12",
			"-storepass", clientpass,
			"-noprompt",
		},
	}
}

func keytool(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "keytool", args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return errors.Wrapf(cmd.Run(), "keytool %s failed", args[0])
}

// CreateKeystoreTruststore generates the server keystore, client keystore,
// client certificate, and client trust store, returning the base64 encoding
// of the client keystore file. a failed invocation aborts the sequence.
func CreateKeystoreTruststore(ctx context.Context, c config.Configuration) (encoded string, err error) {
	var (
		raw        []byte
		etcdir     = c.String("etc_dir")
		serverpass = envx.String(keystoregen.DefaultKeystorePassword, keystoregen.EnvServerKeystorePassword)
		clientpass = envx.String(keystoregen.DefaultKeystorePassword, keystoregen.EnvClientKeystorePassword)
	)

	for _, args := range commands(etcdir, serverpass, clientpass) {
		if err = keytool(ctx, args); err != nil {
			return "", err
		}
	}

	if raw, err = os.ReadFile(filepath.Join(etcdir, ClientKeystore)); err != nil {
		return "", errors.Wrap(err, "unable to read client keystore")
	}

	for _, name := range []string{ServerKeystore, ClientKeystore, ClientCert, ClientTruststore} {
		log.Println(messages.Info(157, name))
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}
