package minio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoragePublicURL(t *testing.T) {
	s := NewStorage(nil, "public", "http://cdn.example.com/")
	assert.Equal(t, "http://cdn.example.com/public/thumbnails/a.png", s.PublicURL("thumbnails/a.png"))
	assert.Equal(t, "http://cdn.example.com/public/thumbnails/a.png", s.PublicURL("/thumbnails/a.png"))
	assert.Equal(t, "", s.PublicURL(""))
}
