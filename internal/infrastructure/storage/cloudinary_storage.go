package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"media-gallery/internal/domain/dto"
	"media-gallery/internal/domain/repositories"
	"media-gallery/internal/pkg/config"
	consts "media-gallery/pkg/constants"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrMissingCredentials is returned when the gateway is not configured.
var ErrMissingCredentials = errors.New("media gateway credentials not configured")

// CloudinaryStorage talks to Cloudinary. A client is built per call from the
// immutable config, so the gateway holds no mutable state.
type CloudinaryStorage struct {
	cfg config.MediaConfig
}

var _ repositories.MediaGateway = (*CloudinaryStorage)(nil)

func NewCloudinaryStorage(cfg config.MediaConfig) *CloudinaryStorage {
	return &CloudinaryStorage{cfg: cfg}
}

func (s *CloudinaryStorage) Configured() error {
	var missing []string
	if s.cfg.CloudName == "" {
		missing = append(missing, "CLOUDINARY_CLOUD_NAME")
	}
	if s.cfg.APIKey == "" {
		missing = append(missing, "CLOUDINARY_API_KEY")
	}
	if s.cfg.APISecret == "" {
		missing = append(missing, "CLOUDINARY_API_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

func (s *CloudinaryStorage) client() (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(s.cfg.CloudName, s.cfg.APIKey, s.cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client oluşturulamadı: %w", err)
	}
	cld.Config.URL.Secure = true
	return cld, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, params dto.TransformParams) (*dto.TransformResult, error) {
	if err := s.Configured(); err != nil {
		return nil, err
	}
	cld, err := s.client()
	if err != nil {
		return nil, err
	}

	res, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		ResourceType:   params.ResourceType,
		Folder:         params.Folder,
		Transformation: TransformationString(params.Transformation),
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload hatası: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload hatası: %s", res.Error.Message)
	}

	return &dto.TransformResult{
		PublicID:     res.PublicID,
		Bytes:        int64(res.Bytes),
		Duration:     durationFromRaw(res.Response),
		Format:       res.Format,
		ResourceType: res.ResourceType,
		Width:        res.Width,
		Height:       res.Height,
		SecureURL:    res.SecureURL,
	}, nil
}

func (s *CloudinaryStorage) Destroy(ctx context.Context, publicID, resourceType string) error {
	if err := s.Configured(); err != nil {
		return err
	}
	cld, err := s.client()
	if err != nil {
		return err
	}

	res, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy hatası: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy hatası: %s", res.Error.Message)
	}
	// "not found" means someone already removed it
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: unexpected result %q", res.Result)
	}
	return nil
}

// URL only needs the cloud name and performs no I/O.
func (s *CloudinaryStorage) URL(publicID string, opts dto.URLOptions) (string, error) {
	if s.cfg.CloudName == "" {
		return "", fmt.Errorf("%w: CLOUDINARY_CLOUD_NAME", ErrMissingCredentials)
	}
	if publicID == "" {
		return "", errors.New("public id is required")
	}
	cld, err := s.client()
	if err != nil {
		return "", err
	}

	src := publicID
	if opts.Format != "" {
		src = publicID + "." + opts.Format
	}

	var url string
	if opts.ResourceType == consts.ResourceImage {
		img, err := cld.Image(src)
		if err != nil {
			return "", err
		}
		img.Transformation = DeliveryTransformation(opts)
		url, err = img.String()
		if err != nil {
			return "", err
		}
	} else {
		video, err := cld.Video(src)
		if err != nil {
			return "", err
		}
		video.Transformation = DeliveryTransformation(opts)
		url, err = video.String()
		if err != nil {
			return "", err
		}
	}
	return url, nil
}

// TransformationString renders upload-time transformations, e.g. "q_auto,f_mp4".
func TransformationString(steps []dto.Transformation) string {
	parts := make([]string, 0, len(steps))
	for _, t := range steps {
		var comps []string
		if t.Quality != "" {
			comps = append(comps, "q_"+t.Quality)
		}
		if t.FetchFormat != "" {
			comps = append(comps, "f_"+t.FetchFormat)
		}
		if len(comps) > 0 {
			parts = append(parts, strings.Join(comps, ","))
		}
	}
	return strings.Join(parts, "/")
}

// DeliveryTransformation renders the resize/crop chain for a delivery URL.
// Components within a step are kept in alphabetical order.
func DeliveryTransformation(opts dto.URLOptions) string {
	var steps []string

	crop := opts.Crop
	if crop == "" {
		crop = "limit"
	}
	var resize []string
	if opts.Width > 0 || opts.Height > 0 {
		resize = append(resize, "c_"+crop)
		if opts.Gravity != "" {
			resize = append(resize, "g_"+opts.Gravity)
		}
		if opts.Height > 0 {
			resize = append(resize, "h_"+strconv.Itoa(opts.Height))
		}
		if opts.Width > 0 {
			resize = append(resize, "w_"+strconv.Itoa(opts.Width))
		}
		steps = append(steps, strings.Join(resize, ","))
	}

	steps = append(steps, "q_auto")

	if opts.Attachment != "" {
		steps = append(steps, "fl_attachment:"+attachmentName(opts.Attachment))
	}
	return strings.Join(steps, "/")
}

// attachmentName keeps the characters Cloudinary accepts in fl_attachment.
func attachmentName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "download"
	}
	return b.String()
}

// The SDK result struct has no duration field; it lives in the raw response,
// which the SDK stores as a pointer to the decoded JSON value.
func durationFromRaw(raw interface{}) float64 {
	var m map[string]interface{}
	switch v := raw.(type) {
	case *map[string]interface{}:
		if v == nil {
			return 0
		}
		m = *v
	case *interface{}:
		if v == nil {
			return 0
		}
		m, _ = (*v).(map[string]interface{})
	case map[string]interface{}:
		m = v
	}
	if m == nil {
		return 0
	}
	switch d := m["duration"].(type) {
	case float64:
		return d
	case string:
		f, err := strconv.ParseFloat(d, 64)
		if err == nil {
			return f
		}
	}
	return 0
}
