package service

// SocialFormat is one of the named content-aware crop targets for the
// social-share flow.
type SocialFormat struct {
	Name   string
	Width  int
	Height int
}

// SocialFormats, in display order.
var SocialFormats = []SocialFormat{
	{Name: "Instagram Square (1:1)", Width: 1080, Height: 1080},
	{Name: "Instagram Portrait (4:5)", Width: 1080, Height: 1350},
	{Name: "Twitter Post (16:9)", Width: 1200, Height: 675},
	{Name: "Twitter Header (3:1)", Width: 1500, Height: 500},
	{Name: "Facebook Cover (205:78)", Width: 820, Height: 312},
}

// LinkBuilder derives delivery URLs from a stored public ID. Implementations
// must be pure: same publicID and intent always yield the byte-identical URL,
// and no network call is made to compute one.
type LinkBuilder interface {
	VideoThumbnailURL(publicID string) string
	VideoDownloadURL(publicID string) string
	VideoPreviewURL(publicID string) string
	SocialCropURL(publicID string, format SocialFormat) string
}
