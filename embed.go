package glowbio

import "embed"

// PublicFS holds the default front end, served when STATIC_DIR does not exist.
//
//go:embed public
var PublicFS embed.FS
