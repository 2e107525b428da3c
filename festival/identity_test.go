package festival

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentifier(t *testing.T) {
	cases := map[string]string{
		"  Someone@Example.COM ": "someone@example.com",
		"+91 98765 43210":        "919876543210",
		"(022) 2345-6789":        "02223456789",
		"12345":                  "12345",
		"internet-identity":      IdentifierInternetIdentity,
		"Social-Login":           IdentifierSocial,
		"":                       "",
		"   ":                    "",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeIdentifier(raw), "input %q", raw)
	}
}

func TestYouTubeVideoID(t *testing.T) {
	valid := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":           "dQw4w9WgXcQ",
		"https://youtube.com/watch?feature=share&v=dQw4w9WgXcQ": "dQw4w9WgXcQ",
		"youtu.be/9bZkp7q19f0":                                  "9bZkp7q19f0",
		"https://youtu.be/9bZkp7q19f0?t=42":                     "9bZkp7q19f0",
		"https://www.youtube.com/embed/jNQXAC9IVRw":             "jNQXAC9IVRw",
		"https://m.youtube.com/shorts/abcdefghijk":              "abcdefghijk",
	}
	for url, want := range valid {
		id, ok := YouTubeVideoID(url)
		assert.True(t, ok, url)
		assert.Equal(t, want, id, url)
	}

	for _, url := range []string{"", "https://vimeo.com/12345", "https://youtube.com/watch?v=short", "not a url"} {
		_, ok := YouTubeVideoID(url)
		assert.False(t, ok, url)
	}

	assert.Equal(t, DefaultThumbnailURL, ThumbnailFor("https://vimeo.com/12345"))
}
