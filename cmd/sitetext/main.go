// Package main provides the entry point for the sitetext CLI.
//
// sitetext converts a plain-text list of sitemap URLs into a single
// Markdown document containing the text content of every reachable page,
// together with a run log explaining why each URL was accepted or rejected.
//
// Usage:
//
//	sitetext sitemap.txt
//	sitetext --workers 10 --output ./reports sitemap.txt
//
// See --help for all available options.
package main

// main is the entry point for sitetext.
func main() {
	Execute()
}
