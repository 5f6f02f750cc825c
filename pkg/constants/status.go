package constants

const StatusOK = "ok"

const (
	ResourceVideo = "video"
	ResourceImage = "image"
)

const (
	OrphanQueue       = "orphan_assets"
	OrphanFailedQueue = "orphan_assets_failed"
)

const (
	PlaybackWidth  = 1920
	PlaybackHeight = 1080
	PosterFormat   = "jpg"
)
