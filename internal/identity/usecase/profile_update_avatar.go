package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/pkg/storage"
)

const defaultAvatarMaxBytes = 2 << 20

var errAvatarTooLarge = errors.New("avatar exceeds max size")

type ProfileUpdateAvatarInput struct {
	File        io.Reader
	ContentType string
}

func avatarExt(contentType string) (string, bool) {
	switch contentType {
	case "image/jpeg":
		return ".jpg", true
	case "image/png":
		return ".png", true
	case "image/webp":
		return ".webp", true
	default:
		return "", false
	}
}

// ProfileUpdateAvatar uploads a new avatar for the caller, points the profile
// at it and removes the previous object when it was stored by us.
func (s *Usecase) ProfileUpdateAvatar(ctx context.Context, in ProfileUpdateAvatarInput) (string, error) {
	ctx, span := s.startSpan(ctx, "ProfileUpdateAvatar")
	defer span.End()

	if in.File == nil {
		return "", goerror.NewInvalidInput(nil, "avatar", "avatar file is required")
	}
	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))
	ext, ok := avatarExt(contentType)
	if !ok {
		return "", goerror.NewInvalidInput(nil, "avatar", "unsupported avatar content type")
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return "", err
	}

	bucket := strings.TrimSpace(s.cfg.GetString("modules.identity.avatar_bucket"))
	baseURL := strings.TrimSuffix(strings.TrimSpace(s.cfg.GetString("modules.identity.avatar_base_url")), "/")
	limit := s.cfg.GetInt64("modules.identity.avatar_max_size_bytes")
	if limit <= 0 {
		limit = defaultAvatarMaxBytes
	}
	key := path.Join(strconv.FormatInt(user.ID, 10), s.uuid.Generate()+ext)

	_, err = s.storage.PutObject(ctx, bucket, key, &cappedReader{r: in.File, left: limit}, storage.PutOptions{
		Size:        -1,
		ContentType: contentType,
		Metadata:    map[string]string{"user_id": strconv.FormatInt(user.ID, 10)},
	})
	if errors.Is(err, errAvatarTooLarge) {
		return "", goerror.NewInvalidInput(nil, "avatar", "avatar exceeds "+strconv.FormatInt(limit, 10)+" bytes")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to upload avatar", "user_id", user.ID, "error", err)
		return "", goerror.NewServer(err)
	}

	url := baseURL + "/" + key
	if err := s.repoDB.UpdateUserAvatar(ctx, user.ID, url); err != nil {
		slog.ErrorContext(ctx, "failed to repo update avatar", "user_id", user.ID, "error", err)
		s.removeAvatar(ctx, bucket, key)
		return "", goerror.NewServer(err)
	}

	if prev, ok := strings.CutPrefix(user.AvatarURL, baseURL+"/"); ok && prev != "" && prev != key {
		s.removeAvatar(ctx, bucket, prev)
	}

	return url, nil
}

func (s *Usecase) removeAvatar(ctx context.Context, bucket, key string) {
	if err := s.storage.DeleteObject(ctx, bucket, key); err != nil {
		slog.WarnContext(ctx, "failed to remove avatar object", "bucket", bucket, "key", key, "error", err)
	}
}

// cappedReader fails with errAvatarTooLarge once more than left bytes come through.
type cappedReader struct {
	r    io.Reader
	left int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if int64(len(p)) > c.left+1 {
		p = p[:c.left+1]
	}
	n, err := c.r.Read(p)
	c.left -= int64(n)
	if c.left < 0 {
		return 0, errAvatarTooLarge
	}
	return n, err
}
