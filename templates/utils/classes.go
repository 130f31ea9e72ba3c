package utils

import twmerge "github.com/Oudwins/tailwind-merge-go"

// Class merges tailwind class lists, later lists winning on conflicts.
func Class(classes ...string) string {
	return twmerge.Merge(classes...)
}
