// Package analysis compares word counts harvested from wiki pages against
// general English word frequencies. It answers questions like "which words
// are unusually common in this wiki compared to everyday English".
package analysis
