package static

import "embed"

// Files holds the stylesheet and icons served under /static.
//
//go:embed css images
var Files embed.FS
