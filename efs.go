package efs

import "embed"

//go:embed static/*
var StaticFS embed.FS
