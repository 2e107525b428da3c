package festival

import "regexp"

const DefaultThumbnailURL = "https://images.unsplash.com/photo-1485846234645-a62644f84728?w=800"

var youTubeURLPattern = regexp.MustCompile(
	`^(?:https?://)?(?:www\.|m\.)?(?:youtube\.com/(?:watch\?(?:.*&)?v=|embed/|shorts/|live/)|youtu\.be/)([A-Za-z0-9_-]{11})(?:[?&#/].*)?$`,
)

// YouTubeVideoID extracts the 11 character video id from a watch, embed, shorts or
// youtu.be link.
func YouTubeVideoID(rawURL string) (string, bool) {
	m := youTubeURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ThumbnailFor derives the poster image of a YouTube link, or the festival default.
func ThumbnailFor(youTubeURL string) string {
	id, ok := YouTubeVideoID(youTubeURL)
	if !ok {
		return DefaultThumbnailURL
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}
