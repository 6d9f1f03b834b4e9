package store

import (
	"fmt"

	"github.com/ashitosh07/lambda/internal/cfg"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// New picks the audit backend named in the configuration and bounds it by
// the configured timeout.
func New(conf *cfg.GeneralConfig, awsCfg aws.Config) (AuditStore, error) {
	var s AuditStore
	switch conf.AuditConfig.Backend {
	case BackendDynamoDB, "":
		s = NewDynamoAuditStore(awsCfg, conf.AuditConfig.TableName, conf.AWSConfig.Endpoint)
	case BackendS3:
		s = NewS3BucketStore(awsCfg, conf.AuditConfig.Bucket, conf.AWSConfig.Endpoint, conf.AWSConfig.UsePathStyle)
	case BackendFile:
		s = NewDataFileStore(conf.AuditConfig.Directory)
	default:
		return nil, fmt.Errorf("unknown audit backend %q", conf.AuditConfig.Backend)
	}

	return WithTimeout(s, conf.AuditConfig.Timeout), nil
}
