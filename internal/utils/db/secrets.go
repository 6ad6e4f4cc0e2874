package db

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/cockroachdb/errors"
	mysqldriver "github.com/go-sql-driver/mysql"

	"github.com/KromaEnergia/loja-cli/internal/config"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SecretsAPI é o subconjunto do cliente do Secrets Manager que usamos.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

func newSecretsClient(ctx context.Context) (SecretsAPI, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

func retrieveCredentials(ctx context.Context, newClient func(context.Context) (SecretsAPI, error), secretID string) (Credentials, error) {
	secretUsername := os.Getenv("DB_USERNAME")
	secretPassword := os.Getenv("DB_PASSWORD")
	if secretUsername != "" && secretPassword != "" {
		return Credentials{Username: secretUsername, Password: secretPassword}, nil
	}

	secrets, err := newClient(ctx)
	if err != nil {
		return Credentials{}, err
	}
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	}
	result, err := secrets.GetSecretValue(ctx, input)
	if err != nil {
		return Credentials{}, errors.Wrapf(err, "get secret %s", secretID)
	}
	if result.SecretString == nil {
		return Credentials{}, errors.Newf("secret %s has no string value", secretID)
	}

	var secret Credentials
	if err := json.Unmarshal([]byte(*result.SecretString), &secret); err != nil {
		return Credentials{}, errors.Wrapf(err, "decode secret %s", secretID)
	}
	return secret, nil
}

// withCredentials injeta usuário e senha no DSN de acordo com o driver.
func withCredentials(driver, dsn string, creds Credentials) (string, error) {
	switch driver {
	case config.DriverPostgres:
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			u, err := url.Parse(dsn)
			if err != nil {
				return "", errors.Wrap(err, "parse postgres url")
			}
			u.User = url.UserPassword(creds.Username, creds.Password)
			return u.String(), nil
		}
		return strings.TrimSpace(dsn) + " user=" + quoteKeyword(creds.Username) + " password=" + quoteKeyword(creds.Password), nil
	case config.DriverMySQL:
		cfg, err := mysqldriver.ParseDSN(dsn)
		if err != nil {
			return "", errors.Wrap(err, "parse mysql dsn")
		}
		cfg.User = creds.Username
		cfg.Passwd = creds.Password
		return cfg.FormatDSN(), nil
	default:
		return dsn, nil
	}
}

// quoteKeyword aplica as regras de aspas do formato chave=valor do libpq.
func quoteKeyword(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
