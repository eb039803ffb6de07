package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		0:                  "0 B",
		512:                "512 B",
		1024:               "1.0 KB",
		1536:               "1.5 KB",
		10 << 20:           "10.0 MB",
		5 << 30:            "5.0 GB",
		3 << 40:            "3.0 TB",
		1<<62 + 1<<61:      "6.0 EB",
		1023 * 1024 * 1024: "1023.0 MB",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatBytes(in), "FormatBytes(%d)", in)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		45 * time.Second:                             "45s",
		59*time.Second + 500*time.Millisecond:        "1m0s",
		2*time.Minute + 30*time.Second:               "2m30s",
		time.Hour + 30*time.Minute:                   "1h30m",
		26*time.Hour + 5*time.Minute + 9*time.Second: "26h5m",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatDuration(in), "FormatDuration(%s)", in)
	}
}

func TestContentAddress(t *testing.T) {
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		ContentAddress([]byte("hello")))
	assert.NotEqual(t, ContentAddress([]byte("a")), ContentAddress([]byte("b")))
}
