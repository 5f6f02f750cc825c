package usecases

import (
	"strings"

	"media-gallery/internal/domain/dto"
)

var socialFormats = []dto.SocialFormat{
	{Name: "Instagram Square (1:1)", Width: 1080, Height: 1080, AspectRatio: "1:1"},
	{Name: "Instagram Portrait (4:5)", Width: 1080, Height: 1350, AspectRatio: "4:5"},
	{Name: "X Post (Twitter) (16:9)", Width: 1200, Height: 675, AspectRatio: "16:9"},
	{Name: "X Header (Twitter) (3:1)", Width: 1500, Height: 500, AspectRatio: "3:1"},
	{Name: "Facebook Cover (205:78)", Width: 820, Height: 312, AspectRatio: "205:78"},
}

const DefaultSocialFormat = "Instagram Portrait (4:5)"

func lookupSocialFormat(name string) (dto.SocialFormat, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSocialFormat
	}
	for _, f := range socialFormats {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return dto.SocialFormat{}, false
}
