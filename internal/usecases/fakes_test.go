package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"media-gallery/internal/domain/dto"
	"media-gallery/internal/domain/entities"
	"media-gallery/internal/domain/repositories"
	"media-gallery/internal/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// mp4Header is enough for content sniffing to report video/mp4.
var mp4Header = []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom")

func videoBytes(n int) []byte {
	b := make([]byte, n)
	copy(b, mp4Header)
	return b
}

type fakeVideoRepo struct {
	mu        sync.Mutex
	videos    []entities.Video
	createErr error
	listErr   error
	creates   int
}

func (r *fakeVideoRepo) Create(_ context.Context, video *entities.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.createErr != nil {
		return r.createErr
	}
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	r.videos = append(r.videos, *video)
	return nil
}

func (r *fakeVideoRepo) GetByID(_ context.Context, id string) (*entities.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.videos {
		if r.videos[i].ID.String() == id {
			v := r.videos[i]
			return &v, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeVideoRepo) ListNewestFirst(context.Context) ([]entities.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := append([]entities.Video(nil), r.videos...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeVideoRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return 0, r.listErr
	}
	return int64(len(r.videos)), nil
}

type fakeGateway struct {
	mu            sync.Mutex
	configuredErr error
	uploadErr     error
	result        dto.TransformResult
	uploads       []dto.TransformParams
	uploadedBytes [][]byte
	seq           int
}

func (g *fakeGateway) Configured() error { return g.configuredErr }

func (g *fakeGateway) Upload(_ context.Context, file io.Reader, params dto.TransformParams) (*dto.TransformResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	g.uploads = append(g.uploads, params)
	g.uploadedBytes = append(g.uploadedBytes, content)
	if g.uploadErr != nil {
		return nil, g.uploadErr
	}
	g.seq++
	res := g.result
	if res.PublicID == "" {
		res.PublicID = fmt.Sprintf("%s/asset-%d", params.Folder, g.seq)
	}
	return &res, nil
}

func (g *fakeGateway) Destroy(context.Context, string, string) error { return nil }

func (g *fakeGateway) URL(publicID string, opts dto.URLOptions) (string, error) {
	if publicID == "" {
		return "", errors.New("public id is required")
	}
	u := fmt.Sprintf("https://media.test/%s/w_%d,h_%d,c_%s,g_%s/%s", opts.ResourceType, opts.Width, opts.Height, opts.Crop, opts.Gravity, publicID)
	if opts.Format != "" {
		u += "." + opts.Format
	}
	if opts.Attachment != "" {
		u += "?attachment=" + opts.Attachment
	}
	return u, nil
}

func (g *fakeGateway) uploadCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.uploads)
}

type fakeOrphanQueue struct {
	mu     sync.Mutex
	assets []dto.OrphanAsset
}

func (q *fakeOrphanQueue) Enqueue(_ context.Context, asset dto.OrphanAsset) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.assets = append(q.assets, asset)
	return nil
}

// stepClock returns strictly increasing timestamps.
func stepClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func testConfig() *config.Config {
	return config.Default()
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
