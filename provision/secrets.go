package provision

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/james-lawrence/keystoregen/config"
	"github.com/james-lawrence/keystoregen/internal/envx"
	"github.com/james-lawrence/keystoregen/messages"
	"github.com/pkg/errors"
)

// SecretName derives the secrets manager entry name from the stack name.
func SecretName(stackname string) string {
	return stackname + "-client-keystore-base64"
}

// UploadSecret publishes the encoded client keystore to aws secrets manager.
// creating an already existing secret fails with the collaborator's
// AlreadyExists condition, which is not specially handled.
func UploadSecret(ctx context.Context, c config.Configuration, payload string) (err error) {
	var (
		sess *session.Session
		resp *secretsmanager.CreateSecretOutput
	)

	if sess, err = session.NewSession(); err != nil {
		return errors.WithStack(err)
	}

	if region := envx.String("", "AWS_REGION"); region != "" {
		sess = sess.Copy(&aws.Config{Region: aws.String(region)})
	}

	svc := secretsmanager.New(sess)
	if resp, err = svc.CreateSecretWithContext(ctx, &secretsmanager.CreateSecretInput{
		Description:  aws.String("Base64 representation of the api server client key store"),
		Name:         aws.String(SecretName(c.String("stackname"))),
		SecretString: aws.String(payload),
	}); err != nil {
		return errors.Wrap(err, "unable to create secret")
	}

	log.Println(messages.Info(299, resp))
	return nil
}
