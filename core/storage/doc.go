// Package storage provides the S3/MinIO client used to publish report
// artifacts. The Client interface covers only what publishing needs, which
// keeps the testify mock in mocks/ small.
package storage
