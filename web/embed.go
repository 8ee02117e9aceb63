package web

import "embed"

// Static embeds the single-page client served at /.
//
//go:embed static/*
var Static embed.FS
