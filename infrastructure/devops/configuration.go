package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Configuration is the full service configuration. In deployed environments
// it lives in an SSM parameter as YAML (name in SECURITYSCAN_CONFIG_PARAM);
// locally each field falls back to its environment variable.
type Configuration struct {
	Addr      string `yaml:"addr"`
	DSN       string `yaml:"dsn"`
	BaseURL   string `yaml:"baseUrl"`
	UploadDir string `yaml:"uploadDir"`

	JWTSecret string `yaml:"jwtSecret"` // base64

	MailFrom          string `yaml:"mailFrom"`
	AdminDashboardURL string `yaml:"adminDashboardUrl"`
	DeptDashboardURL  string `yaml:"deptDashboardUrl"`

	S3Bucket  string `yaml:"s3Bucket"`
	S3BaseURL string `yaml:"s3BaseUrl"`
}

var (
	once    sync.Once
	loaded  *Configuration
	loadErr error
)

func LoadConfiguration(ctx context.Context) (*Configuration, error) {
	once.Do(func() {
		cfg := &Configuration{}

		if paramName := os.Getenv("SECURITYSCAN_CONFIG_PARAM"); paramName != "" {
			if err := loadFromSSM(ctx, paramName, cfg); err != nil {
				loadErr = err
				return
			}
		}

		applyEnvDefaults(cfg)
		loaded = cfg
	})

	return loaded, loadErr
}

func loadFromSSM(ctx context.Context, paramName string, cfg *Configuration) error {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	client := ssm.NewFromConfig(awsCfg)

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("get parameter: %w", err)
	}

	if err := yaml.Unmarshal([]byte(*out.Parameter.Value), cfg); err != nil {
		return fmt.Errorf("unmarshal yaml: %w", err)
	}
	return nil
}

func applyEnvDefaults(cfg *Configuration) {
	envDefault(&cfg.Addr, "ADDR", ":5002")
	envDefault(&cfg.DSN, "DSN", "")
	envDefault(&cfg.BaseURL, "BASE_URL", "http://localhost:5002")
	envDefault(&cfg.UploadDir, "UPLOAD_DIR", "uploads")
	envDefault(&cfg.JWTSecret, "SECURITYSCAN_SIGNING_SECRET", "")
	envDefault(&cfg.MailFrom, "MAIL_FROM", "")
	envDefault(&cfg.AdminDashboardURL, "ADMIN_DASHBOARD_URL", "")
	envDefault(&cfg.DeptDashboardURL, "DEPT_DASHBOARD_URL", "")
	envDefault(&cfg.S3Bucket, "S3_BUCKET", "")
	envDefault(&cfg.S3BaseURL, "S3_BASE_URL", "")
}

func envDefault(dst *string, key string, fallback string) {
	if *dst != "" {
		return
	}
	if v := os.Getenv(key); v != "" {
		*dst = v
		return
	}
	*dst = fallback
}
