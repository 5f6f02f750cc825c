package dto

// TransformParams describes one upload to the media gateway.
type TransformParams struct {
	ResourceType   string // "video" | "image"
	Folder         string
	Filename       string
	ContentType    string
	Transformation []Transformation
}

type Transformation struct {
	Quality     string // e.g. "auto"
	FetchFormat string // e.g. "mp4"
}

// TransformResult is the gateway's result descriptor.
type TransformResult struct {
	PublicID     string
	Bytes        int64
	Duration     float64
	Format       string
	ResourceType string
	Width        int
	Height       int
	SecureURL    string
}

// URLOptions drive pure URL synthesis for a stored asset.
type URLOptions struct {
	ResourceType string
	Width        int
	Height       int
	Format       string // optional, e.g. "jpg" for a poster frame
	Crop         string // optional, e.g. "fill"
	Gravity      string // optional, e.g. "auto"
	Attachment   string // optional download file name (without extension)
}

// OrphanAsset is an uploaded asset whose metadata row was never written.
type OrphanAsset struct {
	PublicID     string `json:"public_id"`
	ResourceType string `json:"resource_type"`
	Reason       string `json:"reason"`
	Attempts     int    `json:"attempts"`
}
