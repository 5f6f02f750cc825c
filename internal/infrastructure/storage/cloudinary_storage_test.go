package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"media-gallery/internal/domain/dto"
	"media-gallery/internal/pkg/config"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cloudinaryConfig() config.MediaConfig {
	return config.MediaConfig{
		Backend:   config.BackendCloudinary,
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
	}
}

func TestCloudinaryStorage_Configured(t *testing.T) {
	assert.NoError(t, NewCloudinaryStorage(cloudinaryConfig()).Configured())

	cfg := cloudinaryConfig()
	cfg.APIKey = ""
	cfg.APISecret = ""
	err := NewCloudinaryStorage(cfg).Configured()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingCredentials))
	assert.Contains(t, err.Error(), "CLOUDINARY_API_KEY")
	assert.Contains(t, err.Error(), "CLOUDINARY_API_SECRET")
	assert.NotContains(t, err.Error(), "CLOUDINARY_CLOUD_NAME")
}

func TestCloudinaryStorage_UploadWithoutCredentials(t *testing.T) {
	s := NewCloudinaryStorage(config.MediaConfig{})
	_, err := s.Upload(context.Background(), strings.NewReader("x"), dto.TransformParams{ResourceType: "video"})
	assert.True(t, errors.Is(err, ErrMissingCredentials))
}

func TestTransformationString(t *testing.T) {
	assert.Equal(t, "q_auto,f_mp4", TransformationString([]dto.Transformation{{Quality: "auto", FetchFormat: "mp4"}}))
	assert.Equal(t, "q_auto/f_webm", TransformationString([]dto.Transformation{{Quality: "auto"}, {FetchFormat: "webm"}}))
	assert.Equal(t, "", TransformationString(nil))
}

func TestDeliveryTransformation(t *testing.T) {
	tests := []struct {
		name string
		opts dto.URLOptions
		want string
	}{
		{"playback", dto.URLOptions{Width: 1920, Height: 1080}, "c_limit,h_1080,w_1920/q_auto"},
		{"fill with gravity", dto.URLOptions{Width: 1080, Height: 1350, Crop: "fill", Gravity: "auto"}, "c_fill,g_auto,h_1350,w_1080/q_auto"},
		{"no resize", dto.URLOptions{}, "q_auto"},
		{"attachment", dto.URLOptions{Width: 1920, Height: 1080, Attachment: "My Trip v1.0!"}, "c_limit,h_1080,w_1920/q_auto/fl_attachment:My_Trip_v1_0"},
		{"attachment without usable chars", dto.URLOptions{Attachment: "!!!"}, "q_auto/fl_attachment:download"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeliveryTransformation(tt.opts))
		})
	}
}

func TestCloudinaryStorage_URL(t *testing.T) {
	s := NewCloudinaryStorage(cloudinaryConfig())

	playback, err := s.URL("video-uploads/abc", dto.URLOptions{ResourceType: "video", Width: 1920, Height: 1080})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(playback, "https://res.cloudinary.com/demo/video/upload/"), playback)
	assert.Contains(t, playback, "c_limit,h_1080,w_1920/q_auto")
	assert.Contains(t, playback, "video-uploads/abc")

	poster, err := s.URL("video-uploads/abc", dto.URLOptions{ResourceType: "video", Width: 1920, Height: 1080, Format: "jpg"})
	require.NoError(t, err)
	assert.Contains(t, poster, "video-uploads/abc.jpg")

	image, err := s.URL("social-share/pic", dto.URLOptions{ResourceType: "image", Width: 1080, Height: 1080, Crop: "fill", Gravity: "auto"})
	require.NoError(t, err)
	assert.Contains(t, image, "/demo/image/upload/")
	assert.Contains(t, image, "c_fill,g_auto,h_1080,w_1080")

	// synthesis is deterministic
	again, err := s.URL("video-uploads/abc", dto.URLOptions{ResourceType: "video", Width: 1920, Height: 1080})
	require.NoError(t, err)
	assert.Equal(t, playback, again)
}

func TestCloudinaryStorage_URLNeedsCloudName(t *testing.T) {
	_, err := NewCloudinaryStorage(config.MediaConfig{}).URL("x", dto.URLOptions{})
	assert.True(t, errors.Is(err, ErrMissingCredentials))

	_, err = NewCloudinaryStorage(cloudinaryConfig()).URL("", dto.URLOptions{})
	assert.Error(t, err)
}

func TestDurationFromRaw(t *testing.T) {
	decode := func(body string) interface{} {
		var res uploader.UploadResult
		require.NoError(t, api.HandleRawResponse([]byte(body), &res))
		return res.Response
	}

	assert.Equal(t, 12.4, durationFromRaw(decode(`{"public_id":"video-uploads/demo","bytes":4000000,"duration":12.4}`)))
	assert.Equal(t, 3.5, durationFromRaw(decode(`{"duration":"3.5"}`)))
	assert.Equal(t, 0.0, durationFromRaw(decode(`{"public_id":"still"}`)))
	assert.Equal(t, 0.0, durationFromRaw(decode(`[1,2]`)))
	assert.Equal(t, 0.0, durationFromRaw(nil))
}

func TestNewMediaGateway(t *testing.T) {
	cfg := config.Default()
	_, ok := NewMediaGateway(cfg).(*CloudinaryStorage)
	assert.True(t, ok)

	cfg.Media.Backend = config.BackendS3
	_, ok = NewMediaGateway(cfg).(*S3Storage)
	assert.True(t, ok)
}
