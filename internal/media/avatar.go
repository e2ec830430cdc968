package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/uvcaspaces/booking-portal/internal/config"
)

// maxAvatarEdge bounds the stored image; larger uploads are scaled down.
const maxAvatarEdge = 512

// Uploader converts profile images to webp and stores them in S3.
type Uploader struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

// NewUploader returns nil when the S3 settings are absent, which disables
// avatar uploads.
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		region:    cfg.S3Region,
		publicURL: cfg.S3PublicURL,
	}
}

// UploadAvatar decodes the image, scales it into the avatar box, encodes
// it as webp and puts it under a fresh key. Returns the public URL.
func (u *Uploader) UploadAvatar(ctx context.Context, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	dst := scaleToFit(src, maxAvatarEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := "avatars/" + uuid.NewString() + ".webp"

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	return u.objectURL(key), nil
}

func (u *Uploader) objectURL(key string) string {
	if u.publicURL != "" {
		return u.publicURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

func scaleToFit(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w > h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
