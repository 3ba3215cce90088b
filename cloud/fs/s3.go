// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"bytes"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"strings"
)

type S3Filesystem struct {
	svc    s3iface.S3API
	bucket string
}

func NewS3Filesystem(session *session.Session, bucket string) (*S3Filesystem, error) {
	return NewS3FilesystemFromIface(s3.New(session), bucket), nil
}

// NewS3FilesystemFromIface is for swapping out the client in tests.
func NewS3FilesystemFromIface(svc s3iface.S3API, bucket string) *S3Filesystem {
	return &S3Filesystem{svc: svc, bucket: bucket}
}

var s3ContentTypes = map[string]string{
	".json": "application/json",
}

func (s3Filesystem *S3Filesystem) WriteFile(filename string, data []byte) error {
	readSeeker := bytes.NewReader(data)

	// Patch S3's limited vocabulary of default content types
	var contentType *string
	for ext, mime := range s3ContentTypes {
		if strings.HasSuffix(filename, ext) {
			mime := mime
			contentType = &mime
			break
		}
	}

	req, _ := s3Filesystem.svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket:       aws.String(s3Filesystem.bucket),
		Key:          aws.String(filename),
		Body:         readSeeker,
		CacheControl: aws.String("no-cache"),
		ContentType:  contentType,
	})
	return req.Send()
}
