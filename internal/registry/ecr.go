package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrTypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
	"github.com/kevinfinalboss/spyglass/pkg/utils"
)

type ECRChecker struct {
	Host      string
	Region    string
	AccountID string
	profiles  []string
	accessKey string
	secretKey string
	awsConfig aws.Config
	ecrClient *ecr.Client
	logger    *logger.Logger
}

func NewECRChecker(host string, config *types.RegistryConfig, log *logger.Logger) (*ECRChecker, error) {
	checker, err := newECRChecker(host, config, log)
	if err != nil {
		return nil, err
	}

	if err := checker.initAWSConfig(context.Background()); err != nil {
		return nil, fmt.Errorf("falha ao inicializar configuração AWS: %w", err)
	}

	return checker, nil
}

func newECRChecker(host string, config *types.RegistryConfig, log *logger.Logger) (*ECRChecker, error) {
	accountID, region, err := utils.ParseECRHost(host)
	if err != nil {
		return nil, err
	}

	checker := &ECRChecker{
		Host:      host,
		Region:    region,
		AccountID: accountID,
		logger:    log,
	}

	if config != nil {
		// Região e conta vêm do host; a configuração pode sobrescrever.
		if config.Region != "" {
			checker.Region = config.Region
		}
		if config.AccountID != "" {
			checker.AccountID = config.AccountID
		}
		checker.profiles = config.Profiles
		checker.accessKey = config.AccessKey
		checker.secretKey = config.SecretKey
	}

	return checker, nil
}

func (c *ECRChecker) initAWSConfig(ctx context.Context) error {
	var cfg aws.Config
	var err error

	if c.accessKey != "" && c.secretKey != "" {
		cfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(c.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				c.accessKey,
				c.secretKey,
				"",
			)),
		)
	} else if len(c.profiles) > 0 {
		for _, profile := range c.profiles {
			cfg, err = awsconfig.LoadDefaultConfig(ctx,
				awsconfig.WithRegion(c.Region),
				awsconfig.WithSharedConfigProfile(profile),
			)
			if err == nil {
				break
			}

			c.logger.Warn("image_check_failed").
				Str("profile", profile).
				Err(err).
				Send()
		}

		if err != nil {
			return fmt.Errorf("falha em todos os profiles AWS: %w", err)
		}
	} else {
		cfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(c.Region),
		)
	}

	if err != nil {
		return fmt.Errorf("falha ao carregar configuração AWS: %w", err)
	}

	c.awsConfig = cfg
	c.ecrClient = ecr.NewFromConfig(cfg)

	c.verifyAccount(ctx)

	return nil
}

// verifyAccount confere via STS se as credenciais carregadas pertencem à
// mesma conta do host do registry. Divergência vira apenas um aviso.
func (c *ECRChecker) verifyAccount(ctx context.Context) {
	stsClient := sts.NewFromConfig(c.awsConfig)

	identity, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		c.logger.Debug("image_check_failed").
			Str("registry", c.Host).
			Err(err).
			Send()
		return
	}

	if identity.Account != nil && *identity.Account != c.AccountID {
		c.logger.Warn("image_check_failed").
			Str("registry", c.Host).
			Str("credential_account", *identity.Account).
			Str("registry_account", c.AccountID).
			Send()
	}
}

func (c *ECRChecker) Name() string {
	return c.Host
}

func (c *ECRChecker) HasImage(ctx context.Context, ref *types.ImageReference) (bool, error) {
	output, err := c.ecrClient.BatchGetImage(ctx, &ecr.BatchGetImageInput{
		RepositoryName: aws.String(ref.Repository),
		ImageIds: []ecrTypes.ImageIdentifier{
			{
				ImageTag: aws.String(ref.Tag),
			},
		},
	})

	if err != nil {
		if strings.Contains(err.Error(), "does not exist") ||
			strings.Contains(err.Error(), "not found") ||
			strings.Contains(err.Error(), "RepositoryNotFound") {
			return false, nil
		}
		return false, fmt.Errorf("falha na consulta ECR para %s:%s: %w", ref.Repository, ref.Tag, err)
	}

	// Tags ausentes em repositório existente chegam como Failures, não como erro.
	for _, failure := range output.Failures {
		if failure.FailureCode == ecrTypes.ImageFailureCodeImageNotFound ||
			failure.FailureCode == ecrTypes.ImageFailureCodeImageTagDoesNotMatchDigest {
			return false, nil
		}
	}

	return len(output.Images) > 0, nil
}
