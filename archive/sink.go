// Package archive is an optional sink that forwards each streamed
// entry's leaf certificate and issuer chain to an S3-compatible
// bucket, content-addressed by SHA-256 so the same certificate is
// never uploaded twice. It has no bearing on the streaming engine
// itself: a caller wires it in by wrapping their handler with
// Sink.Handler.
//
// The content-hash-addressed layout and the "check Exists before Set"
// dedup discipline are the same ones the teacher's submission path
// uses for issuer certificates, applied here to every leaf and chain
// certificate a stream delivers.
package archive

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"ctstream.dev/internal/model"
)

// Sink writes certificates to an S3-compatible bucket.
type Sink struct {
	client  *s3.Client
	bucket  string
	lastErr error
}

// NewSink builds a Sink over an already-resolved aws.Config (e.g. from
// config.LoadDefaultConfig), targeting bucket with path-style
// addressing so it also works against non-AWS S3-compatible
// endpoints.
func NewSink(cfg aws.Config, bucket string) *Sink {
	return &Sink{
		client: s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.UsePathStyle = true
		}),
		bucket: bucket,
	}
}

// NewSinkWithCredentials builds a Sink from explicit static
// credentials and endpoint, for S3-compatible object stores that
// aren't reachable through the ambient AWS credential chain.
func NewSinkWithCredentials(region, bucket, endpoint, accessKey, secretKey string) *Sink {
	cfg := aws.Config{
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		BaseEndpoint: aws.String(endpoint),
		Region:       region,
	}
	return NewSink(cfg, bucket)
}

// Archive uploads entry's leaf certificate and every chain certificate
// that isn't already present in the bucket, keyed by the hex SHA-256
// of each certificate's encoded bytes. The leaf and each chain member
// upload concurrently, the same way the submission path fans its
// per-certificate uploads out across an errgroup.
func (s *Sink) Archive(ctx context.Context, entry model.Entry) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.putIfAbsent(gctx, entry.Certificate); err != nil {
			return fmt.Errorf("archive: leaf certificate: %w", err)
		}
		return nil
	})
	for i, cert := range entry.Chain {
		i, cert := i, cert
		g.Go(func() error {
			if err := s.putIfAbsent(gctx, cert); err != nil {
				return fmt.Errorf("archive: chain certificate %d: %w", i, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func (s *Sink) putIfAbsent(ctx context.Context, cert model.Certificate) error {
	key := certKey(cert)
	exists, err := s.exists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.put(ctx, key, cert.Encoded)
}

func certKey(cert model.Certificate) string {
	fingerprint := sha256.Sum256(cert.Encoded)
	return "cert/" + hex.EncodeToString(fingerprint[:])
}

func (s *Sink) put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	return err
}

func (s *Sink) get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func (s *Sink) exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) && respErr.ResponseError.HTTPStatusCode() == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Get fetches a previously archived certificate back by its content
// hash, mainly useful for tests and operational spot-checks.
func (s *Sink) Get(ctx context.Context, cert model.Certificate) ([]byte, error) {
	return s.get(ctx, certKey(cert))
}

// Handler wraps next so every entry is archived before it reaches
// next. An archive failure stops the stream rather than silently
// dropping entries, since a gap in the archive defeats its purpose.
func (s *Sink) Handler(next func(model.Entry) bool) func(model.Entry) bool {
	return func(entry model.Entry) bool {
		if err := s.Archive(context.Background(), entry); err != nil {
			s.lastErr = err
			return false
		}
		return next(entry)
	}
}

// Err returns the error that caused the most recent Handler-wrapped
// call to stop the stream, or nil if the stream stopped for any other
// reason (or hasn't stopped).
func (s *Sink) Err() error {
	return s.lastErr
}
