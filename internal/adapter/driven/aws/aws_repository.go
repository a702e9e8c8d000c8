package aws

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/diillson/aws-s3-inventory-go/internal/domain/repository"
)

// DefaultControlPlaneRegion é a região usada para chamadas globais da conta, como ListBuckets.
const DefaultControlPlaneRegion = "us-east-1"

// STSAPI is the subset of the STS client used by the repository.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// S3API is the subset of the S3 client used by the repository.
type S3API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
}

// Option customiza a criação do repositório.
type Option func(*AWSRepositoryImpl)

// WithConfigFile points profile discovery and session loading at a specific shared config file.
func WithConfigFile(path string) Option {
	return func(r *AWSRepositoryImpl) { r.configFile = path }
}

// WithControlPlaneRegion overrides the region used for account-wide calls.
func WithControlPlaneRegion(region string) Option {
	return func(r *AWSRepositoryImpl) {
		if region != "" {
			r.controlPlaneRegion = region
		}
	}
}

// AWSRepositoryImpl implementa o AWSRepository com cache de configurações e clientes.
type AWSRepositoryImpl struct {
	configFile         string
	controlPlaneRegion string

	loadConfig func(ctx context.Context, profile string) (aws.Config, error)
	newSTS     func(cfg aws.Config) STSAPI
	newS3      func(cfg aws.Config) S3API

	cfgCache    map[string]aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewAWSRepository cria uma nova implementação do AWSRepository.
func NewAWSRepository(opts ...Option) repository.AWSRepository {
	return newAWSRepository(opts...)
}

func newAWSRepository(opts ...Option) *AWSRepositoryImpl {
	r := &AWSRepositoryImpl{
		controlPlaneRegion: DefaultControlPlaneRegion,
		newSTS:             func(cfg aws.Config) STSAPI { return sts.NewFromConfig(cfg) },
		newS3:              func(cfg aws.Config) S3API { return s3.NewFromConfig(cfg) },
		cfgCache:           make(map[string]aws.Config),
		clientCache:        make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.loadConfig = r.loadSharedConfig
	return r
}

// loadSharedConfig carrega a configuração do SDK vinculada às credenciais do perfil.
func (r *AWSRepositoryImpl) loadSharedConfig(ctx context.Context, profile string) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithSharedConfigProfile(profile),
	}
	if r.configFile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigFiles([]string{r.configFile}))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	cfg, err := r.loadConfig(ctx, profile)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) getServiceClient(ctx context.Context, profile, service string) (interface{}, error) {
	cacheKey := fmt.Sprintf("%s-%s", profile, service)

	r.mu.Lock()
	if client, ok := r.clientCache[cacheKey]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return nil, err
	}

	regionalCfg := cfg.Copy()

	var client interface{}
	switch service {
	case "sts":
		// STS exige uma região; perfis sem região usam a do plano de controle.
		if regionalCfg.Region == "" {
			regionalCfg.Region = r.controlPlaneRegion
		}
		client = r.newSTS(regionalCfg)
	case "s3":
		// ListBuckets é global na conta, então a região é sempre fixa.
		regionalCfg.Region = r.controlPlaneRegion
		client = r.newS3(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.mu.Lock()
	r.clientCache[cacheKey] = client
	r.mu.Unlock()

	return client, nil
}

func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context, profile string) (string, error) {
	client, err := r.getServiceClient(ctx, profile, "sts")
	if err != nil {
		return "", err
	}
	stsClient := client.(STSAPI)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("GetCallerIdentity: %w", err)
	}

	accountID := aws.ToString(result.Account)
	if accountID == "" {
		return "", errors.New("GetCallerIdentity: response has no account")
	}
	return accountID, nil
}

// ListBuckets returns the names of all buckets owned by the profile's account.
// Only the first page of results is read.
func (r *AWSRepositoryImpl) ListBuckets(ctx context.Context, profile string) ([]string, error) {
	client, err := r.getServiceClient(ctx, profile, "s3")
	if err != nil {
		return nil, err
	}
	s3Client := client.(S3API)

	out, err := s3Client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("ListBuckets: %w", err)
	}

	names := make([]string, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		if name := aws.ToString(b.Name); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
