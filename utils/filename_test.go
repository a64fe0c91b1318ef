package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureFilename(t *testing.T) {
	cases := map[string]string{
		"photo.jpg":              "photo.jpg",
		"../../etc/passwd.jpg":   "etc_passwd.jpg",
		`..\..\windows\a.png`:    "windows_a.png",
		"my cool photo.jpeg":     "my_cool_photo.jpeg",
		"Café.png":               "Cafe.png",
		"фото.jpg":               "jpg",
		"  .hidden  ":            "hidden",
		"a$b%c.jpg":              "abc.jpg",
		"":                       "",
		"../..":                  "",
		"квартира":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, SecureFilename(in), "input %q", in)
	}
}
