package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomImageName_PreservesExtension(t *testing.T) {
	name := RandomImageName("photo.JPG")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}\.jpg$`), name)

	name = RandomImageName("voiture.webp")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}\.webp$`), name)
}

func TestRandomImageName_NoExtension(t *testing.T) {
	name := RandomImageName("photo")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), name)
}

func TestRandomImageName_Unique(t *testing.T) {
	assert.NotEqual(t, RandomImageName("a.png"), RandomImageName("a.png"))
}

func TestAllowedImageTypes(t *testing.T) {
	assert.True(t, AllowedImageTypes["image/jpeg"])
	assert.True(t, AllowedImageTypes["image/webp"])
	assert.False(t, AllowedImageTypes["application/pdf"])
	assert.False(t, AllowedImageTypes["image/svg+xml"])
}
